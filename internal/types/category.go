package types

type Category struct {
	CategoryID   int    `gorm:"column:category_id;primaryKey;autoIncrement" json:"category_id"`
	Name         string `gorm:"not null;column:name" json:"name"`
	Description  string `gorm:"column:description" json:"description"`
	DisplayOrder int    `gorm:"not null;column:display_order" json:"display_order"`
}

func (Category) TableName() string {
	return "wellness_categories"
}

type QuestionCategoryMapping struct {
	MappingID  int     `gorm:"column:mapping_id;primaryKey;autoIncrement" json:"mapping_id"`
	QuestionID int     `gorm:"not null;index;column:question_id" json:"question_id"`
	CategoryID int     `gorm:"not null;index;column:category_id" json:"category_id"`
	Weight     float64 `gorm:"not null;default:1;column:weight" json:"weight"`
	IsExternal bool    `gorm:"not null;default:false;column:is_external" json:"is_external"`
}

func (QuestionCategoryMapping) TableName() string {
	return "question_category_mapping"
}
