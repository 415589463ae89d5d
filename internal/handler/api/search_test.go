//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"studio-search/internal/domain/pricing"
	"studio-search/internal/domain/search"
	"studio-search/internal/domain/studio"
	"studio-search/internal/handler/api"
	resdto "studio-search/internal/handler/dto/response"
	"studio-search/internal/pkg/config"
	"studio-search/internal/pkg/errs"
	"studio-search/internal/usecase/queries"
	"studio-search/tests/common/builder"
	"studio-search/tests/common/httptest"
	"studio-search/tests/common/testutil"
	queriesmock "studio-search/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SearchHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	cfg            config.Config
	mockCtrl       *gomock.Controller
	mockSearch     *queriesmock.MockSearchQueries
	mockConditions *queriesmock.MockConditionQueries
	handler        *api.SearchHandler
}

func (s *SearchHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.cfg = config.NewTestConfig()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockSearch = queriesmock.NewMockSearchQueries(s.mockCtrl)
	s.mockConditions = queriesmock.NewMockConditionQueries(s.mockCtrl)
	s.handler = api.NewSearchHandler(s.mockSearch, s.mockConditions, s.cfg)

	s.router.GET("/api/search", s.handler.Search)
	s.router.GET("/api/search/conditions", s.handler.GetConditions)
	s.router.DELETE("/api/search/conditions", s.handler.DeleteConditions)
}

func (s *SearchHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSearchHandlerSuite(t *testing.T) {
	suite.Run(t, new(SearchHandlerTestSuite))
}

// priced view with one room at ¥1,000/h over the default 2h window
func (s *SearchHandlerTestSuite) sampleView(in search.QueryInput) *queries.SearchView {
	query, err := search.NewQuery(in, builder.Tokyo)
	s.Require().NoError(err)

	studios, issues := studio.GroupRecords([]studio.Record{builder.NewRecordBuilder().BuildRecord()})
	s.Require().Empty(issues)
	out := search.NewEngine(pricing.NewDefaultPriceCalculator()).Run(studios, query)

	return &queries.SearchView{
		CatalogVersion: uuid.New(),
		Query:          query,
		Results:        out.Results,
	}
}

type testCaseSearch struct {
	name       string
	mutate     func(m map[string]string)
	expectCode int
}

func (s *SearchHandlerTestSuite) TestSearch() {
	s.Run("正常系: 200と結果カード、条件Cookieを返す", func() {
		in := builder.NewQueryBuilder().WithMaxPrice(3000).BuildInput()
		view := s.sampleView(in)
		s.mockSearch.EXPECT().Search(gomock.Any(), gomock.Any()).Return(view, nil).Times(1)
		s.mockConditions.EXPECT().FromQuery(view.Query).Return(queries.Conditions{Date: "2025-01-06"}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			testutil.URL("/api/search", testutil.SearchParams(), testutil.Field("price", "3000")))

		var body resdto.SearchResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.CatalogVersion.String(), body.CatalogVersion)
		s.Equal(1, body.Summary.Count)
		s.Equal("月曜", body.Summary.DayOfWeek)
		s.Equal("時間貸し (2時間利用)", body.Summary.ModeLabel)
		s.Equal("すべてのエリア", body.Summary.AreasLabel)
		s.Equal("¥3,000", body.Summary.BudgetLabel)
		s.Equal(25.0, body.Summary.RequiredArea)
		s.Require().Len(body.Results, 1)
		card := body.Results[0]
		s.Equal(int64(2000), card.TotalCost)
		s.Equal("¥400", card.PerPersonCostLabel)
		s.Equal("適合 (40㎡)", card.AreaFitLabel)
		s.Equal("8人", card.RecommendedMaxLabel)
		s.Require().Len(card.AppliedRates, 1)
		s.Equal("¥1,000/h", card.AppliedRates[0].PriceLabel)
		httptest.AssertCookieSet(s.T(), rec, s.cfg.Cookie.ConditionsName)
	})

	s.Run("クエリパラメータが検索入力に変換される", func() {
		want := search.QueryInput{
			Date:      "2025-01-06",
			StartTime: "18:00",
			EndTime:   "20:00",
			People:    5,
			Mode:      "day",
			Areas:     []string{"渋谷", "池袋"},
		}
		usage := 4.0
		want.AreaPerPerson = &usage

		view := s.sampleView(want)
		s.mockSearch.EXPECT().Search(gomock.Any(), want).Return(view, nil).Times(1)
		s.mockConditions.EXPECT().FromQuery(gomock.Any()).Return(queries.Conditions{}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			testutil.URL("/api/search", testutil.SearchParams(),
				testutil.Field("areas", "渋谷,池袋"), testutil.Field("usage", "4")))

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("予算なしは無制限", func() {
		view := s.sampleView(builder.NewQueryBuilder().BuildInput())
		s.mockSearch.EXPECT().Search(gomock.Any(), gomock.Any()).Return(view, nil).Times(1)
		s.mockConditions.EXPECT().FromQuery(gomock.Any()).Return(queries.Conditions{}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			testutil.URL("/api/search", testutil.SearchParams()))

		var body resdto.SearchResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Nil(body.Summary.Budget)
		s.Equal("無制限", body.Summary.BudgetLabel)
	})

	s.Run("異常系: 400 入力エラー", func() {
		cases := []testCaseSearch{
			{name: "people 未指定", mutate: testutil.Field("people", ""), expectCode: http.StatusBadRequest},
			{name: "people 0", mutate: testutil.Field("people", "0"), expectCode: http.StatusBadRequest},
			{name: "mode 不正", mutate: testutil.Field("mode", "evening"), expectCode: http.StatusBadRequest},
			{name: "price 数値でない", mutate: testutil.Field("price", "abc"), expectCode: http.StatusBadRequest},
			{name: "usage 数値でない", mutate: testutil.Field("usage", "広め"), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
					testutil.URL("/api/search", testutil.SearchParams(), tc.mutate))
				s.Equal(tc.expectCode, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("異常系: 400 検索条件エラー", func() {
		err := errors.Join(search.ErrInvalidQuery, search.ErrInvalidTimeRange)
		s.mockSearch.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, err).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			testutil.URL("/api/search", testutil.SearchParams(), testutil.Field("endTime", "17:00")))

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid search conditions")
		s.Nil(httptest.ExtractCookie(rec, s.cfg.Cookie.ConditionsName))
	})

	s.Run("異常系: 502 カタログ取得失敗", func() {
		err := errs.Mark(errors.New("timeout"), errs.ErrCatalogUnavailable)
		s.mockSearch.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, err).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			testutil.URL("/api/search", testutil.SearchParams()))

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "スタジオデータ")
	})
}

func (s *SearchHandlerTestSuite) TestConditions() {
	s.Run("未保存なら初期値を返す", func() {
		price := int64(5000)
		s.mockConditions.EXPECT().Defaults().Return(queries.Conditions{
			Date: "2025-01-06", StartTime: "18:00", EndTime: "20:00", Price: &price, People: 5, Mode: "day", AreaPerPerson: 5,
		}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/search/conditions")

		var body resdto.ConditionsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Saved)
		s.Equal("18:00", body.StartTime)
		s.Equal([]string{}, body.Areas)
		s.Require().NotNil(body.Price)
		s.Equal(int64(5000), *body.Price)
	})

	s.Run("検索後のCookieから条件を復元する", func() {
		in := builder.NewQueryBuilder().WithAreas("渋谷").BuildInput()
		view := s.sampleView(in)
		s.mockSearch.EXPECT().Search(gomock.Any(), gomock.Any()).Return(view, nil).Times(1)
		s.mockConditions.EXPECT().FromQuery(gomock.Any()).Return(queries.Conditions{
			Date: "2025-01-06", StartTime: "18:00", EndTime: "20:00", People: 5, Mode: "day", Areas: []string{"渋谷"}, AreaPerPerson: 5,
		}).Times(1)

		searchRec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			testutil.URL("/api/search", testutil.SearchParams(), testutil.Field("areas", "渋谷")))
		saved := httptest.AssertCookieSet(s.T(), searchRec, s.cfg.Cookie.ConditionsName)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/search/conditions", saved)

		var body resdto.ConditionsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Saved)
		s.Equal([]string{"渋谷"}, body.Areas)
		s.Nil(body.Price)
	})

	s.Run("削除でCookieを消す", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/search/conditions")

		s.Equal(http.StatusNoContent, rec.Code)
		httptest.AssertCookieCleared(s.T(), rec, s.cfg.Cookie.ConditionsName)
	})
}
