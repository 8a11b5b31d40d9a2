package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "overcooked-menu/menu-svc/internal/api/http"
	"overcooked-menu/menu-svc/internal/domain"
	"overcooked-menu/menu-svc/internal/mocks"
	"overcooked-menu/menu-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, menus *mocks.MenuServiceInterface, target string) *httptest.ResponseRecorder {
	t.Helper()
	handler := httpapi.NewHandler(menus, quietLogger())
	r := mux.NewRouter()
	handler.RegisterRoutes(r)

	req := httptest.NewRequest("GET", target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDailyMenuHandler(t *testing.T) {
	menu := &domain.Menu{
		Date: "2024-03-05",
		Sections: []domain.Section{{
			Name:      "Soups",
			MenuItems: []domain.DatedMenuItem{{MenuItem: domain.MenuItem{Name: "Soup", Hash: "aaa"}, Date: "2024-03-05"}},
		}},
	}

	tests := []struct {
		name      string
		target    string
		setupMock func(*mocks.MenuServiceInterface)
		wantCode  int
		wantBody  string
	}{
		{
			name:   "menu_found",
			target: "/api/menu/daily-menu/north/lunch/2024/3/5",
			setupMock: func(m *mocks.MenuServiceInterface) {
				m.On("GetMenu", mock.Anything, "2024-03-05", "north", "lunch").Return(menu, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "no_menu_published",
			target: "/api/menu/daily-menu/north/lunch/2024/03/06",
			setupMock: func(m *mocks.MenuServiceInterface) {
				m.On("GetMenu", mock.Anything, "2024-03-06", "north", "lunch").Return(nil, nil).Once()
			},
			wantCode: http.StatusOK,
			wantBody: "null\n",
		},
		{
			name:      "non_numeric_day",
			target:    "/api/menu/daily-menu/north/lunch/2024/03/first",
			setupMock: func(m *mocks.MenuServiceInterface) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:   "impossible_date",
			target: "/api/menu/daily-menu/north/lunch/2024/02/30",
			setupMock: func(m *mocks.MenuServiceInterface) {
				m.On("GetMenu", mock.Anything, "2024-02-30", "north", "lunch").Return(nil, service.ErrInvalidDate).Once()
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name:   "store_unavailable",
			target: "/api/menu/daily-menu/north/lunch/2024/03/05",
			setupMock: func(m *mocks.MenuServiceInterface) {
				m.On("GetMenu", mock.Anything, "2024-03-05", "north", "lunch").Return(nil, service.ErrStoreUnavailable).Once()
			},
			wantCode: http.StatusServiceUnavailable,
			wantBody: "menu data temporarily unavailable\n",
		},
		{
			name:   "unexpected_failure",
			target: "/api/menu/daily-menu/north/lunch/2024/03/05",
			setupMock: func(m *mocks.MenuServiceInterface) {
				m.On("GetMenu", mock.Anything, "2024-03-05", "north", "lunch").Return(nil, assert.AnError).Once()
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			menus := mocks.NewMenuServiceInterface(t)
			testCase.setupMock(menus)

			w := serve(t, menus, testCase.target)

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantBody != "" {
				assert.Equal(t, testCase.wantBody, w.Body.String())
			}
			if testCase.wantCode == http.StatusOK && testCase.wantBody == "" {
				var got domain.Menu
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Equal(t, *menu, got)
			}
		})
	}
}

func TestMonthlyViewHandler(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		setupMock func(*mocks.MenuServiceInterface)
		wantCode  int
	}{
		{
			name:   "view",
			target: "/api/menu/monthly-view/north/lunch/2024/2",
			setupMock: func(m *mocks.MenuServiceInterface) {
				m.On("GetMonthlyView", mock.Anything, 2024, 2, "north", "lunch").
					Return([]domain.MonthlyViewDay{{Day: "2024-02-01", HasMenuItems: true}}, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "month_out_of_range",
			target: "/api/menu/monthly-view/north/lunch/2024/13",
			setupMock: func(m *mocks.MenuServiceInterface) {
				m.On("GetMonthlyView", mock.Anything, 2024, 13, "north", "lunch").Return(nil, service.ErrInvalidDate).Once()
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name:      "non_numeric_year",
			target:    "/api/menu/monthly-view/north/lunch/this-year/2",
			setupMock: func(m *mocks.MenuServiceInterface) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			menus := mocks.NewMenuServiceInterface(t)
			testCase.setupMock(menus)

			w := serve(t, menus, testCase.target)
			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestLatestItemVersionHandler(t *testing.T) {
	version := &domain.VersionPointer{MenuItem: domain.MenuItem{Name: "Soup", Hash: "bbb"}, Date: "2024-03-09"}

	tests := []struct {
		name      string
		target    string
		setupMock func(*mocks.MenuServiceInterface)
		wantCode  int
		wantType  string
		wantBody  string
	}{
		{
			name:   "latest_version",
			target: "/api/menu/latest-item-version/aaa",
			setupMock: func(m *mocks.MenuServiceInterface) {
				m.On("GetLatestVersion", mock.Anything, "aaa").Return(version, nil).Once()
			},
			wantCode: http.StatusOK,
			wantType: "application/json",
		},
		{
			name:   "never_scraped",
			target: "/api/menu/latest-item-version/zzz",
			setupMock: func(m *mocks.MenuServiceInterface) {
				m.On("GetLatestVersion", mock.Anything, "zzz").Return(nil, nil).Once()
			},
			wantCode: http.StatusOK,
			wantType: "application/json",
			wantBody: "null\n",
		},
		{
			name:   "qr_code",
			target: "/api/menu/latest-item-version/aaa/qrcode",
			setupMock: func(m *mocks.MenuServiceInterface) {
				m.On("ItemQRCode", mock.Anything, "aaa").Return([]byte("\x89PNG"), nil).Once()
			},
			wantCode: http.StatusOK,
			wantType: "image/png",
			wantBody: "\x89PNG",
		},
		{
			name:   "qr_code_for_unknown_dish",
			target: "/api/menu/latest-item-version/zzz/qrcode",
			setupMock: func(m *mocks.MenuServiceInterface) {
				m.On("ItemQRCode", mock.Anything, "zzz").Return(nil, service.ErrNotFound).Once()
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			menus := mocks.NewMenuServiceInterface(t)
			testCase.setupMock(menus)

			w := serve(t, menus, testCase.target)

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantType != "" {
				assert.Equal(t, testCase.wantType, w.Header().Get("Content-Type"))
			}
			if testCase.wantBody != "" {
				assert.Equal(t, testCase.wantBody, w.Body.String())
			}
		})
	}
}

func TestCatalogHandlers(t *testing.T) {
	menus := mocks.NewMenuServiceInterface(t)
	menus.On("Locations").Return([]domain.Location{{Slug: "north", Name: "North", Displayed: true}}).Once()
	menus.On("FoodProperties").Return([]domain.FoodProperty{{Slug: "vegan", Name: "Vegan"}}).Once()

	w := serve(t, menus, "/api/menu/locations")
	assert.Equal(t, http.StatusOK, w.Code)
	var locations []domain.Location
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &locations))
	assert.Equal(t, "North", locations[0].Name)

	w = serve(t, menus, "/api/menu/food-properties")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"slug":"vegan","name":"Vegan","description":"","displayed":false}]`, w.Body.String())
}

func TestRouter(t *testing.T) {
	router := httpapi.NewRouter(httpapi.NewHandler(mocks.NewMenuServiceInterface(t), quietLogger()))

	tests := []struct {
		name     string
		target   string
		wantCode int
	}{
		{name: "health", target: "/health", wantCode: http.StatusOK},
		{name: "metrics", target: "/metrics", wantCode: http.StatusOK},
		{name: "unknown_route", target: "/api/menu/unknown", wantCode: http.StatusNotFound},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", testCase.target, nil)
			req.Header.Set("Origin", "https://menus.example.edu")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, testCase.wantCode, w.Code)
			assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
