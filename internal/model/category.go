package model

type Category struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=80"`
}

func (r *CreateCategoryRequest) Validate() error {
	return validate.Struct(r)
}

type UpdateCategoryRequest struct {
	ID   int64  `param:"id" json:"-" validate:"required,gt=0"`
	Name string `json:"name" validate:"required,max=80"`
}

func (r *UpdateCategoryRequest) Validate() error {
	return validate.Struct(r)
}

type CategoryList struct {
	Categories []Category `json:"categories"`
}
