package routes

import (
	"Bakehouse-Backend/domain"
	"Bakehouse-Backend/internal/middleware"
	"net/http/httptest"
	"testing"

	jwtlib "github.com/golang-jwt/jwt/v4"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// okHandlers satisfies every handler interface and answers 200, so a test
// request's status code reflects the middleware chain alone.
type okHandlers struct{}

func ok(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }

func (okHandlers) Register(c *fiber.Ctx) error   { return ok(c) }
func (okHandlers) Login(c *fiber.Ctx) error      { return ok(c) }
func (okHandlers) Me(c *fiber.Ctx) error         { return ok(c) }
func (okHandlers) GetUsers(c *fiber.Ctx) error   { return ok(c) }
func (okHandlers) DeleteUser(c *fiber.Ctx) error { return ok(c) }

func (okHandlers) CreateStaff(c *fiber.Ctx) error      { return ok(c) }
func (okHandlers) GetStaff(c *fiber.Ctx) error         { return ok(c) }
func (okHandlers) GetStaffDetails(c *fiber.Ctx) error  { return ok(c) }
func (okHandlers) UpdateStaff(c *fiber.Ctx) error      { return ok(c) }
func (okHandlers) DeleteStaff(c *fiber.Ctx) error      { return ok(c) }
func (okHandlers) UploadStaffPhoto(c *fiber.Ctx) error { return ok(c) }

func (okHandlers) CreateIngredient(c *fiber.Ctx) error     { return ok(c) }
func (okHandlers) GetIngredients(c *fiber.Ctx) error       { return ok(c) }
func (okHandlers) GetIngredientDetails(c *fiber.Ctx) error { return ok(c) }
func (okHandlers) UpdateIngredient(c *fiber.Ctx) error     { return ok(c) }
func (okHandlers) DeleteIngredient(c *fiber.Ctx) error     { return ok(c) }
func (okHandlers) AdjustStock(c *fiber.Ctx) error          { return ok(c) }
func (okHandlers) GetStockMovements(c *fiber.Ctx) error    { return ok(c) }

func (okHandlers) CreateIssuance(c *fiber.Ctx) error        { return ok(c) }
func (okHandlers) GetIssuances(c *fiber.Ctx) error          { return ok(c) }
func (okHandlers) GetAvailableIssuances(c *fiber.Ctx) error { return ok(c) }
func (okHandlers) DeleteIssuance(c *fiber.Ctx) error        { return ok(c) }

func (okHandlers) CreateCatalogEntry(c *fiber.Ctx) error { return ok(c) }
func (okHandlers) GetCatalogEntries(c *fiber.Ctx) error  { return ok(c) }
func (okHandlers) UpdateCatalogEntry(c *fiber.Ctx) error { return ok(c) }
func (okHandlers) DeleteCatalogEntry(c *fiber.Ctx) error { return ok(c) }
func (okHandlers) CreateProduct(c *fiber.Ctx) error      { return ok(c) }
func (okHandlers) GetProducts(c *fiber.Ctx) error        { return ok(c) }
func (okHandlers) GetProductDetails(c *fiber.Ctx) error  { return ok(c) }
func (okHandlers) UpdateProduct(c *fiber.Ctx) error      { return ok(c) }
func (okHandlers) DeleteProduct(c *fiber.Ctx) error      { return ok(c) }

func (okHandlers) CreateSheet(c *fiber.Ctx) error     { return ok(c) }
func (okHandlers) GetSheets(c *fiber.Ctx) error       { return ok(c) }
func (okHandlers) GetSheetDetails(c *fiber.Ctx) error { return ok(c) }
func (okHandlers) DeleteSheet(c *fiber.Ctx) error     { return ok(c) }

func (okHandlers) GetVarianceReport(c *fiber.Ctx) error { return ok(c) }
func (okHandlers) RecordAudit(c *fiber.Ctx) error       { return ok(c) }
func (okHandlers) GetChecklistDates(c *fiber.Ctx) error { return ok(c) }
func (okHandlers) GetChecklist(c *fiber.Ctx) error      { return ok(c) }
func (okHandlers) DeleteChecklist(c *fiber.Ctx) error   { return ok(c) }
func (okHandlers) ExportChecklist(c *fiber.Ctx) error   { return ok(c) }

// roleTokenService treats the bearer token itself as the role.
type roleTokenService struct{}

func (roleTokenService) GenerateTokenUser(userId string, _ string) string { return userId }

func (roleTokenService) ValidateTokenUser(_ string) (*jwtlib.Token, error) { return nil, nil }

func (roleTokenService) GetUserIDByToken(token string) (string, string, error) {
	return "a8e1a5c2-0000-0000-0000-000000000001", token, nil
}

func newTestRouter() *fiber.App {
	app := fiber.New()
	h := okHandlers{}
	cfg := &Config{
		App:               app,
		UserHandler:       h,
		StaffHandler:      h,
		IngredientHandler: h,
		IssuanceHandler:   h,
		ProductHandler:    h,
		ProductionHandler: h,
		AuditHandler:      h,
		Middleware:        middleware.NewMiddleware(),
		JWTService:        roleTokenService{},
	}
	cfg.Setup()
	return app
}

func TestRoleGates(t *testing.T) {
	app := newTestRouter()

	cases := []struct {
		name   string
		method string
		target string
		role   string
		want   int
	}{
		{"admin creates catalog entry", fiber.MethodPost, "/api/v1/catalog", domain.RoleAdmin, fiber.StatusOK},
		{"pastry cannot touch catalog", fiber.MethodPost, "/api/v1/catalog", domain.RolePastry, fiber.StatusForbidden},
		{"inventory cannot list catalog", fiber.MethodGet, "/api/v1/catalog", domain.RoleInventory, fiber.StatusForbidden},
		{"pastry manages products", fiber.MethodPost, "/api/v1/products", domain.RolePastry, fiber.StatusOK},

		{"inventory creates issuance", fiber.MethodPost, "/api/v1/issuances", domain.RoleInventory, fiber.StatusOK},
		{"pastry cannot create issuance", fiber.MethodPost, "/api/v1/issuances", domain.RolePastry, fiber.StatusForbidden},
		{"pastry cannot delete issuance", fiber.MethodDelete, "/api/v1/issuances/42", domain.RolePastry, fiber.StatusForbidden},
		{"pastry reads available issuances", fiber.MethodGet, "/api/v1/issuances/available", domain.RolePastry, fiber.StatusOK},
		{"inventory reads available issuances", fiber.MethodGet, "/api/v1/issuances/available", domain.RoleInventory, fiber.StatusOK},
		{"hr cannot read available issuances", fiber.MethodGet, "/api/v1/issuances/available", domain.RoleHR, fiber.StatusForbidden},

		{"pastry signs sheets", fiber.MethodPost, "/api/v1/production-sheets", domain.RolePastry, fiber.StatusOK},
		{"pastry cannot delete a sheet", fiber.MethodDelete, "/api/v1/production-sheets/42", domain.RolePastry, fiber.StatusForbidden},
		{"admin deletes a sheet", fiber.MethodDelete, "/api/v1/production-sheets/42", domain.RoleAdmin, fiber.StatusOK},

		{"hr manages staff", fiber.MethodGet, "/api/v1/staff", domain.RoleHR, fiber.StatusOK},
		{"pastry cannot manage staff", fiber.MethodGet, "/api/v1/staff", domain.RolePastry, fiber.StatusForbidden},
		{"inventory reads variance report", fiber.MethodGet, "/api/v1/audit/report", domain.RoleInventory, fiber.StatusOK},
		{"pastry cannot read variance report", fiber.MethodGet, "/api/v1/audit/report", domain.RolePastry, fiber.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.target, nil)
			req.Header.Set("Authorization", "Bearer "+tc.role)

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}
}

func TestMissingTokenIsUnauthorized(t *testing.T) {
	app := newTestRouter()

	req := httptest.NewRequest(fiber.MethodGet, "/api/v1/issuances/available", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
