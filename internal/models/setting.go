package models

// Setting is a key/value application setting.
type Setting struct {
	Key   string `gorm:"column:setting_key;primaryKey;size:100" json:"key"`
	Value string `gorm:"column:setting_value;size:255;not null" json:"value"`
}

func (Setting) TableName() string { return "settings" }
