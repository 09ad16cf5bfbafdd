package movies

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aws/aws-lambda-go/events"
	sentrygo "github.com/getsentry/sentry-go"

	"github.com/KillianGolds/ds-serverlessREST-lab/internal/api"
	"github.com/KillianGolds/ds-serverlessREST-lab/internal/errs"
)

const (
	msgMissingID = "Missing movie Id"
	msgInvalidID = "Invalid movie Id"
)

type Handler struct {
	store  Store
	logger *slog.Logger
}

func NewHandler(store Store, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{store: store, logger: logger}
}

// Handle serves GET /movies/{movieId}[?cast=true]. The returned error is
// always nil; failures are reported through the response status.
func (h *Handler) Handle(ctx context.Context, request events.APIGatewayV2HTTPRequest) (resp events.APIGatewayProxyResponse, err error) {
	h.logger.InfoContext(ctx, "[EVENT]", "event", request)

	defer func() {
		if r := recover(); r != nil {
			resp = h.fault(ctx, fmt.Errorf("%v", r))
		}
	}()

	movieID, ok := parseMovieID(request.PathParameters["movieId"])
	if !ok {
		return api.Message(http.StatusNotFound, msgMissingID), nil
	}
	includeCast := request.QueryStringParameters["cast"] == "true"

	movie, err := h.store.GetMovie(ctx, movieID)
	h.logger.InfoContext(ctx, "GetMovie response", "movieId", movieID, "item", movie, "error", err)
	if err != nil {
		if errs.ErrorCode(err) == errs.ENOTFOUND {
			return api.Message(http.StatusNotFound, msgInvalidID), nil
		}
		return h.fault(ctx, err), nil
	}

	body := map[string]interface{}{
		"data": movie,
	}

	if includeCast {
		cast, err := h.store.GetCast(ctx, movieID)
		h.logger.InfoContext(ctx, "GetCast response", "movieId", movieID, "count", len(cast), "items", cast, "error", err)
		if err != nil {
			return h.fault(ctx, err), nil
		}
		if cast == nil {
			cast = []Record{}
		}
		body["cast"] = cast
	}

	return api.CreateResponse(http.StatusOK, body), nil
}

func (h *Handler) fault(ctx context.Context, err error) events.APIGatewayProxyResponse {
	h.logger.ErrorContext(ctx, "movie lookup failed", "error", err)
	sentrygo.CaptureException(err)
	return api.Error(err)
}

// parseMovieID accepts only positive base-10 integers; 0 is reported as
// missing, the same as an absent parameter.
func parseMovieID(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
