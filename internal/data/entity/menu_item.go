package entity

type MenuItem struct {
	Base
	Name        string  `db:"name"`
	Description *string `db:"description"`
	Price       float64 `db:"price"`
	Category    string  `db:"category"`
	IsAvailable bool    `db:"is_available"`
}
