package track

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/TheOutlierDev/UppbeatApi/internal/user"
)

// ErrUnknownArtist marks a creation that referenced an artist id the store
// does not know. The store error is joined in, not replaced.
var ErrUnknownArtist = errors.New("track: unknown artist reference")

type Repository interface {
	AddTrack(ctx context.Context, t *Track) (*Track, error)
	GetTrackByID(ctx context.Context, id string) (*Track, error)
	GetTracks(ctx context.Context, genre, search string, page, pageSize int) ([]Track, int, error)
	UpdateTrack(ctx context.Context, id string, t *Track) error
	DeleteTrack(ctx context.Context, id string) error
}

type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository returns a Repository backed by the store's stored
// procedures. All calls are single round-trips; transactional guarantees are
// the store's.
func NewStoreRepository(db *gorm.DB) Repository {
	return &storeRepository{db: db}
}

func (r *storeRepository) AddTrack(ctx context.Context, t *Track) (*Track, error) {
	// The procedure's INOUT parameter comes back as the result row.
	row := r.db.WithContext(ctx).Raw(
		`CALL sp_add_track(?, ?, ?, ?, ?, NULL)`,
		t.Name, t.ArtistID, t.Duration, t.File, t.Genres,
	).Row()

	var id string
	if err := row.Scan(&id); err != nil {
		if isForeignKeyViolation(err) {
			return nil, errors.Join(ErrUnknownArtist, err)
		}
		return nil, err
	}

	t.ID = id
	return t, nil
}

func (r *storeRepository) GetTrackByID(ctx context.Context, id string) (*Track, error) {
	rows, err := r.db.WithContext(ctx).
		Raw(`SELECT * FROM sp_get_track_by_id(?)`, id).
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	return scanTrackRow(rows)
}

// GetTracks runs one paginated query. The returned total is the size of the
// full matching set, not of the current page: the procedure emits it as a
// window count on every row. A page beyond the last one yields no rows and
// therefore a zero total.
func (r *storeRepository) GetTracks(ctx context.Context, genre, search string, page, pageSize int) ([]Track, int, error) {
	rows, err := r.db.WithContext(ctx).Raw(
		`SELECT * FROM sp_get_tracks(?, ?, ?, ?)`,
		optional(genre), optional(search), page, pageSize,
	).Rows()
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	tracks := make([]Track, 0, pageSize)
	total := 0
	for rows.Next() {
		t, n, err := scanTrackPageRow(rows)
		if err != nil {
			return nil, 0, err
		}
		tracks = append(tracks, *t)
		total = n
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return tracks, total, nil
}

// UpdateTrack rewrites name, duration, file and genres. The artist reference
// is immutable after creation and is not part of the call. Existence is not
// checked here; callers that need a not-found distinction look the track up
// first.
func (r *storeRepository) UpdateTrack(ctx context.Context, id string, t *Track) error {
	return r.db.WithContext(ctx).Exec(
		`CALL sp_update_track(?, ?, ?, ?, ?)`,
		id, t.Name, t.Duration, t.File, t.Genres,
	).Error
}

// DeleteTrack is idempotent: deleting an id that no longer exists is not an
// error at this layer.
func (r *storeRepository) DeleteTrack(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Exec(`CALL sp_delete_track(?)`, id).Error
}

// rowScanner is the part of *sql.Rows and *sql.Row the decoders need.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanTrackRow decodes one sp_get_track_by_id row: the flat track columns
// followed by the "Artist."-prefixed projection of the owning identity.
func scanTrackRow(row rowScanner) (*Track, error) {
	var (
		t      Track
		artist user.User
	)
	if err := row.Scan(
		&t.ID, &t.Name, &t.ArtistID, &t.Duration, &t.File, &t.Genres,
		&t.CreatedAt, &t.UpdatedAt,
		&artist.ID, &artist.Name, &artist.Role,
	); err != nil {
		return nil, err
	}
	t.Artist = &artist
	return &t, nil
}

// scanTrackPageRow decodes one sp_get_tracks row, which carries the same
// shape plus the trailing TotalCount window column.
func scanTrackPageRow(row rowScanner) (*Track, int, error) {
	var (
		t      Track
		artist user.User
		total  int
	)
	if err := row.Scan(
		&t.ID, &t.Name, &t.ArtistID, &t.Duration, &t.File, &t.Genres,
		&t.CreatedAt, &t.UpdatedAt,
		&artist.ID, &artist.Name, &artist.Role,
		&total,
	); err != nil {
		return nil, 0, err
	}
	t.Artist = &artist
	return &t, total, nil
}

func optional(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
