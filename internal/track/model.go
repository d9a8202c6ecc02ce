package track

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/TheOutlierDev/UppbeatApi/internal/user"
)

// Track is the catalog entry for one audio file. ID is empty until the store
// assigns it on creation; ArtistID must reference an existing identity, which
// the store enforces.
type Track struct {
	ID        string     `json:"id"`
	Name      string     `json:"name" binding:"required,max=200"`
	ArtistID  string     `json:"artist_id" binding:"required,uuid"`
	Duration  float64    `json:"duration" binding:"required,gt=0"`
	File      string     `json:"file" binding:"required"`
	Genres    GenreList  `json:"genres"`
	Artist    *user.User `json:"artist,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// GenreList maps a Postgres text[] column to a string slice. The store's
// procedures take and return native arrays, so the codec speaks the array
// literal format on both directions.
type GenreList []string

func (g *GenreList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*g = GenreList{}
		return nil
	case string:
		return g.decode(v)
	case []byte:
		return g.decode(string(v))
	default:
		return fmt.Errorf("track: cannot scan %T into GenreList", src)
	}
}

func (g *GenreList) decode(s string) error {
	if len(s) < 2 || s[0] != '{' || s[len(s)-1] != '}' {
		return fmt.Errorf("track: malformed array literal %q", s)
	}
	body := s[1 : len(s)-1]
	if body == "" {
		*g = GenreList{}
		return nil
	}

	out := make([]string, 0, 4)
	var cur strings.Builder
	i := 0
	for i < len(body) {
		switch body[i] {
		case '"':
			i++
			for i < len(body) {
				c := body[i]
				if c == '\\' && i+1 < len(body) {
					cur.WriteByte(body[i+1])
					i += 2
					continue
				}
				if c == '"' {
					i++
					break
				}
				cur.WriteByte(c)
				i++
			}
		case ',':
			out = append(out, cur.String())
			cur.Reset()
			i++
		default:
			cur.WriteByte(body[i])
			i++
		}
	}
	out = append(out, cur.String())

	*g = out
	return nil
}

func (g GenreList) Value() (driver.Value, error) {
	if len(g) == 0 {
		return "{}", nil
	}
	var b strings.Builder
	b.WriteByte('{')
	for i, s := range g {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		for j := 0; j < len(s); j++ {
			if s[j] == '"' || s[j] == '\\' {
				b.WriteByte('\\')
			}
			b.WriteByte(s[j])
		}
		b.WriteByte('"')
	}
	b.WriteByte('}')
	return b.String(), nil
}
