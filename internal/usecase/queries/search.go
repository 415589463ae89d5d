package queries

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"studio-search/internal/domain/pricing"
	"studio-search/internal/domain/search"
	"studio-search/internal/pkg/config"
	"studio-search/internal/pkg/errs"

	"github.com/google/uuid"
)

type SearchView struct {
	CatalogVersion uuid.UUID
	Query          search.Query
	Results        []search.Result
	SkippedRooms   int
	RejectedRows   int
}

type SearchQueries interface {
	Search(ctx context.Context, in search.QueryInput) (*SearchView, error)
}

type searchQueriesImpl struct {
	catalog CatalogReader
	engine  *search.Engine
	cfg     config.SearchConfig
	loc     *time.Location
	logger  *slog.Logger
}

func NewSearchQueries(catalog CatalogReader, engine *search.Engine, cfg config.SearchConfig, logger *slog.Logger) SearchQueries {
	return &searchQueriesImpl{
		catalog: catalog,
		engine:  engine,
		cfg:     cfg,
		loc:     cfg.Location(),
		logger:  logger,
	}
}

func (q *searchQueriesImpl) Search(ctx context.Context, in search.QueryInput) (*SearchView, error) {
	if in.AreaPerPerson == nil && q.cfg.AreaPerPerson > 0 {
		v := q.cfg.AreaPerPerson
		in.AreaPerPerson = &v
	}

	query, err := search.NewQuery(in, q.loc)
	if err != nil {
		return nil, err
	}

	catalog, err := q.catalog.Load(ctx)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "load catalog"), errs.ErrCatalogUnavailable)
	}

	out := q.engine.Search(catalog.Records, query)
	q.report(catalog.Version, out)

	return &SearchView{
		CatalogVersion: catalog.Version,
		Query:          query,
		Results:        out.Results,
		SkippedRooms:   len(out.Skips),
		RejectedRows:   len(out.Issues),
	}, nil
}

func (q *searchQueriesImpl) report(version uuid.UUID, out search.Outcome) {
	for _, issue := range out.Issues {
		q.logger.Warn("不正なレコードを除外しました",
			"catalog_version", version.String(),
			"index", issue.Index,
			"studio_name", issue.StudioName,
			"room_name", issue.RoomName,
			"error", issue.Err.Error())
	}

	for _, skip := range out.Skips {
		var gap *pricing.CoverageGapError
		if errors.As(skip.Err, &gap) {
			q.logger.Warn("料金ルールが時間帯をカバーしていません",
				"studio", skip.StudioKey,
				"room", skip.RoomName,
				"day", gap.Day.String(),
				"minute", gap.Minute.String())
			continue
		}
		q.logger.Debug("部屋を検索結果から除外しました",
			"studio", skip.StudioKey,
			"room", skip.RoomName,
			"reason", string(skip.Reason),
			"cost", skip.Cost)
	}
}
