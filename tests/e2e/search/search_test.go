//go:build e2e

package search_test

import (
	"net/http"
	"testing"

	"studio-search/internal/handler/dto/response"
	"studio-search/tests/common/builder"
	"studio-search/tests/common/dbtest"
	"studio-search/tests/common/httptest"
	"studio-search/tests/common/testutil"
	"studio-search/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	searchURL     = "/api/search"
	conditionsURL = "/api/search/conditions"
	areasURL      = "/api/studios/areas"
)

type SearchSuite struct {
	e2e.SharedSuite
}

func (s *SearchSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestSearchSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(SearchSuite))
}

func (s *SearchSuite) seedCatalog() {
	dbtest.InsertRateRecords(s.T(), s.DB,
		// 渋谷: 平日昼 1,000/h + 夜 1,500/h, 深夜パック 6,000
		builder.NewRecordBuilder().WithStudio("st-1", "スタジオA").WithArea("渋谷").
			WithRate("平日昼", "平日", "09:00", "19:00", 1000).BuildRecord(),
		builder.NewRecordBuilder().WithStudio("st-1", "スタジオA").WithArea("渋谷").
			WithRate("平日夜", "平日", "19:00", "24:00", 1500).BuildRecord(),
		builder.NewRecordBuilder().WithStudio("st-1", "スタジオA").WithArea("渋谷").
			WithNightPack("毎日", 6000).BuildRecord(),
		// 池袋: 終日 800/h
		builder.NewRecordBuilder().WithStudio("st-2", "スタジオB").WithArea("池袋").
			WithRoom("rm-9", "Bスタ").WithAreaSqm(30).
			WithRate("通常", "毎日", "00:00", "24:00", 800).BuildRecord(),
		// 池袋: 最安だが5人には狭い
		builder.NewRecordBuilder().WithStudio("st-4", "スタジオD").WithArea("池袋").
			WithRoom("rm-1", "Dスタ").WithAreaSqm(20).
			WithRate("通常", "毎日", "00:00", "24:00", 100).BuildRecord(),
		// 町田: 土日祝のみ
		builder.NewRecordBuilder().WithStudio("st-3", "スタジオC").WithArea("町田").
			WithRate("週末", "土日祝", "00:00", "24:00", 500).BuildRecord(),
	)
}

func (s *SearchSuite) TestSearch() {
	s.Run("昼間: 安い順、時間帯をまたぐ料金を合算", func() {
		t := s.T()
		s.seedCatalog()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, testutil.URL(searchURL, testutil.SearchParams()))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var body response.SearchResponse
		httptest.DecodeResponseBody(t, w.Body, &body)

		got := make([][2]any, len(body.Results))
		for i, r := range body.Results {
			got[i] = [2]any{r.StudioName, r.TotalCost}
		}
		// B: 2h x 800, A: 18:00 1000 + 19:00 1500, C: 平日は料金なし, D: 20㎡ < 25㎡
		want := [][2]any{{"スタジオB", int64(1600)}, {"スタジオA", int64(2500)}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("results mismatch (-want +got):\n%s", diff)
		}
		require.Equal(t, "月曜", body.Summary.DayOfWeek)
		require.Equal(t, 1, body.Summary.SkippedRooms)
		require.True(t, body.Results[0].AreaFits)
		require.Equal(t, "適合 (30㎡)", body.Results[0].AreaFitLabel)
		httptest.AssertCookieSet(t, w, s.Config.Cookie.ConditionsName)
	})

	s.Run("予算とエリアで絞り込む", func() {
		t := s.T()
		s.seedCatalog()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			testutil.URL(searchURL, testutil.SearchParams(), testutil.Field("price", "2000"), testutil.Field("areas", "渋谷,池袋")))
		require.Equal(t, http.StatusOK, w.Code)

		var body response.SearchResponse
		httptest.DecodeResponseBody(t, w.Body, &body)
		require.Len(t, body.Results, 1)
		require.Equal(t, "スタジオB", body.Results[0].StudioName)
		require.Equal(t, "渋谷, 池袋", body.Summary.AreasLabel)
	})

	s.Run("深夜パック: 最安パックのみ", func() {
		t := s.T()
		s.seedCatalog()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			testutil.URL(searchURL, testutil.SearchParams(), testutil.Field("mode", "night")))
		require.Equal(t, http.StatusOK, w.Code)

		var body response.SearchResponse
		httptest.DecodeResponseBody(t, w.Body, &body)
		require.Len(t, body.Results, 1)
		require.Equal(t, int64(6000), body.Results[0].TotalCost)
		require.True(t, body.Results[0].AppliedRates[0].NightPack)
		require.Equal(t, "¥6,000", body.Results[0].AppliedRates[0].PriceLabel)
		require.Nil(t, body.Summary.Hours)
	})

	s.Run("開始が終了以降なら400", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			testutil.URL(searchURL, testutil.SearchParams(), testutil.Field("startTime", "21:00")))

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid search conditions")
	})
}

func (s *SearchSuite) TestConditions() {
	s.Run("検索条件を保存して復元し、削除できる", func() {
		t := s.T()
		s.seedCatalog()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			testutil.URL(searchURL, testutil.SearchParams(), testutil.Field("price", "3000")))
		require.Equal(t, http.StatusOK, w.Code)
		saved := httptest.AssertCookieSet(t, w, s.Config.Cookie.ConditionsName)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, conditionsURL, saved)
		var got response.ConditionsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.True(t, got.Saved)
		require.Equal(t, "2025-01-06", got.Date)
		require.Equal(t, int64(3000), *got.Price)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, conditionsURL, saved)
		require.Equal(t, http.StatusNoContent, w.Code)
		httptest.AssertCookieCleared(t, w, s.Config.Cookie.ConditionsName)
	})

	s.Run("未保存なら初期値", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, conditionsURL)
		var got response.ConditionsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.False(t, got.Saved)
		require.Equal(t, "18:00", got.StartTime)
		require.Equal(t, "20:00", got.EndTime)
	})
}

func (s *SearchSuite) TestAreas() {
	s.Run("エリア順に並び、一覧にないエリアはその他", func() {
		t := s.T()
		s.seedCatalog()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, areasURL)
		var body response.AreaDirectoryResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)

		areas := make([]string, len(body.Areas))
		for i, g := range body.Areas {
			areas[i] = g.Area
		}
		// 渋谷 precedes 池袋 in the built-in order; 町田 is listed, so nothing falls into その他
		require.Equal(t, []string{"渋谷", "池袋", "町田"}, areas)
		require.Len(t, body.Areas[0].Studios, 1)
	})
}
