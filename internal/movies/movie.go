package movies

import (
	"context"

	"github.com/KillianGolds/ds-serverlessREST-lab/internal/errs"
)

// Record is a stored item passed through untouched. The handler never looks
// inside movie or cast records.
type Record map[string]interface{}

var ErrMovieNotFound = errs.Errorf(errs.ENOTFOUND, "movie not found")

type Store interface {
	// GetMovie returns ErrMovieNotFound when no item has the given id.
	GetMovie(ctx context.Context, id int) (Record, error)
	// GetCast returns every cast entry whose movieId equals movieID, in
	// query order. The slice is empty, not nil, when there are none.
	GetCast(ctx context.Context, movieID int) ([]Record, error)
}
