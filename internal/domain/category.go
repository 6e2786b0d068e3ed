package domain

type Category struct {
	ID   int64  `json:"category_id" gorm:"column:category_id;primaryKey"`
	Name string `json:"name" gorm:"column:name;not null;uniqueIndex"`
}

func (Category) TableName() string { return "categories" }
