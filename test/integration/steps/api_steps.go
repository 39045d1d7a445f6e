// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
)

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I set header "([^"]*)" to "([^"]*)"$`, iSetHeaderTo)
	ctx.Step(`^I am registered and logged in$`, iAmRegisteredAndLoggedIn)
	ctx.Step(`^I am registered and logged in as "([^"]*)"$`, iAmRegisteredAndLoggedInAs)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should be (-?\d+(?:\.\d+)?)$`, theResponseFieldShouldBeNumber)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response field "([^"]*)" should not exist$`, theResponseFieldShouldNotExist)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^I save the response field "([^"]*)" as "([^"]*)"$`, iSaveTheResponseFieldAs)
}

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

// expand replaces {name} placeholders with values captured by earlier steps.
func (tc *TestContext) expand(s string) string {
	for key, value := range tc.saved {
		s = strings.ReplaceAll(s, "{"+key+"}", value)
	}
	return s
}

func (tc *TestContext) doRequest(method, endpoint string, body []byte) error {
	url := tc.server.URL + tc.expand(endpoint)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}
	if tc.accessToken != "" && req.Header.Get("Authorization") == "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	return nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return tc.doRequest(method, endpoint, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return tc.doRequest(method, endpoint, []byte(tc.expand(body.Content)))
}

func iSetHeaderTo(ctx context.Context, key, value string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.requestHeaders[key] = tc.expand(value)
	return nil
}

func iAmRegisteredAndLoggedIn(ctx context.Context) error {
	return iAmRegisteredAndLoggedInAs(ctx, "merchant@pingoou.com.br")
}

func iAmRegisteredAndLoggedInAs(ctx context.Context, email string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	payload := fmt.Sprintf(
		`{"email":%q,"name":"Test Merchant","store_name":"PDV 30","password":"SuperSecret1"}`,
		email,
	)
	if err := tc.doRequest(http.MethodPost, "/api/v1/auth/register", []byte(payload)); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("registration failed with status %d: %s", tc.response.StatusCode, tc.responseBody)
	}

	var auth struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.Unmarshal(tc.responseBody, &auth); err != nil {
		return fmt.Errorf("failed to parse auth response: %w", err)
	}

	tc.accessToken = auth.AccessToken
	tc.refreshToken = auth.RefreshToken
	tc.saved["refresh_token"] = auth.RefreshToken
	return nil
}

func theResponseStatusShouldBe(ctx context.Context, expected int) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.response == nil {
		return fmt.Errorf("no response recorded")
	}
	if tc.response.StatusCode != expected {
		return fmt.Errorf("expected status %d, got %d. body: %s", expected, tc.response.StatusCode, tc.responseBody)
	}
	return nil
}

// lookupField walks a dot-separated path through the response JSON. Numeric
// segments index into arrays.
func (tc *TestContext) lookupField(path string) (any, error) {
	var parsed any
	if err := json.Unmarshal(tc.responseBody, &parsed); err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %w", err)
	}

	current := parsed
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[segment]
			if !ok {
				return nil, fmt.Errorf("field %q not found in response: %s", path, tc.responseBody)
			}
			current = value
		case []any:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 || index >= len(node) {
				return nil, fmt.Errorf("invalid array index %q in path %q", segment, path)
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("cannot descend into %q at segment %q", path, segment)
		}
	}
	return current, nil
}

func formatJSONValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return "null"
	default:
		encoded, _ := json.Marshal(v)
		return string(encoded)
	}
}

func theResponseFieldShouldBe(ctx context.Context, path, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	value, err := tc.lookupField(path)
	if err != nil {
		return err
	}
	actual := formatJSONValue(value)
	if actual != tc.expand(expected) {
		return fmt.Errorf("expected field %q to be %q, got %q", path, expected, actual)
	}
	return nil
}

func theResponseFieldShouldBeNumber(ctx context.Context, path, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	value, err := tc.lookupField(path)
	if err != nil {
		return err
	}

	want, err := strconv.ParseFloat(expected, 64)
	if err != nil {
		return fmt.Errorf("invalid expected number %q", expected)
	}

	// Monetary fields are serialized as decimal strings; accept both forms.
	var got float64
	switch v := value.(type) {
	case float64:
		got = v
	case string:
		got, err = strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("field %q is not numeric: %q", path, v)
		}
	default:
		return fmt.Errorf("field %q is not numeric: %v", path, value)
	}

	if got != want {
		return fmt.Errorf("expected field %q to be %v, got %v", path, want, got)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, path string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	_, err := tc.lookupField(path)
	return err
}

func theResponseFieldShouldNotExist(ctx context.Context, path string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if _, err := tc.lookupField(path); err == nil {
		return fmt.Errorf("expected field %q to be absent. body: %s", path, tc.responseBody)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, substring string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if !strings.Contains(string(tc.responseBody), tc.expand(substring)) {
		return fmt.Errorf("response does not contain %q. body: %s", substring, tc.responseBody)
	}
	return nil
}

func iSaveTheResponseFieldAs(ctx context.Context, path, name string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	value, err := tc.lookupField(path)
	if err != nil {
		return err
	}
	tc.saved[name] = formatJSONValue(value)
	return nil
}
