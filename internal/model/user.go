package model

// User 用户（即频道）模型
type User struct {
	Base
	Username   string `gorm:"size:64;not null;uniqueIndex;comment:用户名" json:"username"`
	FullName   string `gorm:"size:255;not null;comment:显示名称" json:"fullName"`
	Password   string `gorm:"size:255;not null;comment:密码" json:"-"`
	Avatar     string `gorm:"size:500;comment:头像" json:"avatar"`
	CoverImage string `gorm:"size:500;comment:频道封面" json:"coverImage"`
}

func (User) TableName() string {
	return "users"
}
