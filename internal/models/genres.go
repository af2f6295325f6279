package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// GenreList stores an ordered list of genre tags as a JSON-encoded text
// column, so the same model works on both Postgres and SQLite.
type GenreList []string

var _ driver.Valuer = (GenreList)(nil)

func (g GenreList) Value() (driver.Value, error) {
	if g == nil {
		g = GenreList{}
	}
	b, err := json.Marshal([]string(g))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (g *GenreList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*g = GenreList{}
		return nil
	case []byte:
		return json.Unmarshal(v, (*[]string)(g))
	case string:
		return json.Unmarshal([]byte(v), (*[]string)(g))
	default:
		return fmt.Errorf("cannot scan %T into GenreList", src)
	}
}
