// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cucumber/godog"
)

// registerFixtureSteps registers steps that seed data through the public API.
func registerFixtureSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I have a product named "([^"]*)" priced "([^"]*)" costing "([^"]*)"$`, iHaveAProduct)
	ctx.Step(`^I have recorded a sale of (\d+) "([^"]*)" paid with "([^"]*)"$`, iHaveRecordedASale)
	ctx.Step(`^I have an expense "([^"]*)" of "([^"]*)" in category "([^"]*)"$`, iHaveAnExpense)
	ctx.Step(`^I have marked "([^"]*)" as a worked day$`, iHaveMarkedAWorkedDay)
	ctx.Step(`^my credit card rate is "([^"]*)" percent$`, myCreditCardRateIs)
	ctx.Step(`^my delivery daily cost is "([^"]*)"$`, myDeliveryDailyCostIs)
}

func (tc *TestContext) seed(method, endpoint string, payload string, wantStatus int) error {
	if err := tc.doRequest(method, endpoint, []byte(tc.expand(payload))); err != nil {
		return err
	}
	if tc.response.StatusCode != wantStatus {
		return fmt.Errorf("fixture request %s %s failed with status %d: %s",
			method, endpoint, tc.response.StatusCode, tc.responseBody)
	}
	return nil
}

func iHaveAProduct(ctx context.Context, name, price, cost string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	payload := fmt.Sprintf(`{"name":%q,"price":%q,"cost_price":%q}`, name, price, cost)
	if err := tc.seed(http.MethodPost, "/api/v1/products", payload, http.StatusCreated); err != nil {
		return err
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(tc.responseBody, &created); err != nil {
		return fmt.Errorf("failed to parse product response: %w", err)
	}
	tc.saved["product_id"] = created.ID
	return nil
}

func iHaveRecordedASale(ctx context.Context, qty int, productName, paymentMethod string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	productID, ok := tc.saved["product_id"]
	if !ok {
		return fmt.Errorf("no product seeded for %q", productName)
	}

	payload := fmt.Sprintf(
		`{"items":[{"product_id":%q,"qty":%d}],"payment_method":%q}`,
		productID, qty, paymentMethod,
	)
	if err := tc.seed(http.MethodPost, "/api/v1/sales", payload, http.StatusCreated); err != nil {
		return err
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(tc.responseBody, &created); err != nil {
		return fmt.Errorf("failed to parse sale response: %w", err)
	}
	tc.saved["sale_id"] = created.ID
	return nil
}

func iHaveAnExpense(ctx context.Context, description, amount, category string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	payload := fmt.Sprintf(`{"description":%q,"amount":%q,"category":%q}`, description, amount, category)
	if err := tc.seed(http.MethodPost, "/api/v1/expenses", payload, http.StatusCreated); err != nil {
		return err
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(tc.responseBody, &created); err != nil {
		return fmt.Errorf("failed to parse expense response: %w", err)
	}
	tc.saved["expense_id"] = created.ID
	return nil
}

func iHaveMarkedAWorkedDay(ctx context.Context, workDate string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	payload := fmt.Sprintf(`{"work_date":%q}`, workDate)
	return tc.seed(http.MethodPost, "/api/v1/delivery/work-days/toggle", payload, http.StatusOK)
}

func myCreditCardRateIs(ctx context.Context, rate string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	payload := fmt.Sprintf(`{"card_rate_credit":%q}`, rate)
	return tc.seed(http.MethodPut, "/api/v1/profile", payload, http.StatusOK)
}

func myDeliveryDailyCostIs(ctx context.Context, cost string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	payload := fmt.Sprintf(`{"delivery_daily_cost_brl":%q}`, cost)
	return tc.seed(http.MethodPut, "/api/v1/profile", payload, http.StatusOK)
}
