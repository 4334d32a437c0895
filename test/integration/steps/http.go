package steps

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
)

func (t *testContext) registerHTTPSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I set header "([^"]*)" to "([^"]*)"$`, t.iSetHeader)
	ctx.Step(`^I send a (GET|POST|PUT|PATCH|DELETE) request to "([^"]*)"$`, t.iSendARequest)
	ctx.Step(`^I send a (GET|POST|PUT|PATCH|DELETE) request to "([^"]*)" with body:$`, t.iSendARequestWithBody)
}

func (t *testContext) registerAssertionSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, t.theResponseStatusShouldBe)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, t.theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, t.theResponseFieldShouldExist)
	ctx.Step(`^the response field "([^"]*)" should not exist$`, t.theResponseFieldShouldNotExist)
	ctx.Step(`^the response field "([^"]*)" should have (\d+) items?$`, t.theResponseFieldShouldHaveItems)
	ctx.Step(`^the response should have (\d+) items?$`, t.theResponseShouldHaveItems)

	ctx.Step(`^the database should have (\d+) "([^"]*)" records?$`, t.theDatabaseShouldHaveRecords)
	ctx.Step(`^the database should have a "([^"]*)" record where "([^"]*)" is "([^"]*)"$`, t.theDatabaseShouldHaveARecordWhere)
	ctx.Step(`^the database should have no "([^"]*)" record where "([^"]*)" is "([^"]*)"$`, t.theDatabaseShouldHaveNoRecordWhere)
	ctx.Step(`^the "([^"]*)" record where "([^"]*)" is "([^"]*)" should be soft deleted$`, t.theRecordShouldBeSoftDeleted)
}

func (t *testContext) iSetHeader(name, value string) error {
	t.headers[name] = t.substitute(value)
	return nil
}

func (t *testContext) iSendARequest(method, path string) error {
	return t.doRequest(method, path, nil)
}

func (t *testContext) iSendARequestWithBody(method, path string, body *godog.DocString) error {
	payload := []byte(t.substitute(body.Content))
	return t.doRequest(method, path, payload)
}

func (t *testContext) doRequest(method, path string, body []byte) error {
	url := baseURL + t.substitute(path)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := t.placeholders["access_token"]; ok && t.headers["Authorization"] == "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for name, value := range t.headers {
		req.Header.Set(name, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	t.response = resp
	t.body, err = io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	t.captureFromResponse()
	return nil
}

// captureFromResponse pulls well-known values out of the last response so
// later steps can reference them as placeholders.
func (t *testContext) captureFromResponse() {
	var parsed map[string]interface{}
	if err := json.Unmarshal(t.body, &parsed); err != nil {
		return
	}

	for _, key := range []string{"access_token", "refresh_token"} {
		if value, ok := parsed[key].(string); ok {
			t.placeholders[key] = value
		}
	}
	if id, ok := parsed["id"].(string); ok {
		t.placeholders["last_id"] = id
	}
}

// substitute replaces {{name}} markers with captured placeholder values.
func (t *testContext) substitute(s string) string {
	for name, value := range t.placeholders {
		s = strings.ReplaceAll(s, "{{"+name+"}}", value)
	}
	return s
}

func (t *testContext) theResponseStatusShouldBe(expected int) error {
	if t.response == nil {
		return fmt.Errorf("no response recorded")
	}
	if t.response.StatusCode != expected {
		return fmt.Errorf("expected status %d, got %d (body: %s)", expected, t.response.StatusCode, string(t.body))
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(path, expected string) error {
	value, err := t.fieldValue(path)
	if err != nil {
		return err
	}

	expected = t.substitute(expected)
	actual := stringify(value)
	if actual != expected {
		return fmt.Errorf("expected field %q to be %q, got %q (body: %s)", path, expected, actual, string(t.body))
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(path string) error {
	if _, err := t.fieldValue(path); err != nil {
		return err
	}
	return nil
}

func (t *testContext) theResponseFieldShouldNotExist(path string) error {
	if _, err := t.fieldValue(path); err == nil {
		return fmt.Errorf("expected field %q to be absent (body: %s)", path, string(t.body))
	}
	return nil
}

func (t *testContext) theResponseFieldShouldHaveItems(path string, count int) error {
	value, err := t.fieldValue(path)
	if err != nil {
		return err
	}

	items, ok := value.([]interface{})
	if !ok {
		return fmt.Errorf("field %q is not an array (body: %s)", path, string(t.body))
	}
	if len(items) != count {
		return fmt.Errorf("expected %d items in %q, got %d", count, path, len(items))
	}
	return nil
}

func (t *testContext) theResponseShouldHaveItems(count int) error {
	var items []interface{}
	if err := json.Unmarshal(t.body, &items); err != nil {
		return fmt.Errorf("response is not a JSON array: %w (body: %s)", err, string(t.body))
	}
	if len(items) != count {
		return fmt.Errorf("expected %d items, got %d", count, len(items))
	}
	return nil
}

// fieldValue resolves a dot-separated path into the parsed response body.
// Numeric segments index into arrays.
func (t *testContext) fieldValue(path string) (interface{}, error) {
	var parsed interface{}
	if err := json.Unmarshal(t.body, &parsed); err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %w (body: %s)", err, string(t.body))
	}

	current := parsed
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]interface{}:
			value, ok := node[segment]
			if !ok {
				return nil, fmt.Errorf("field %q not found in response (body: %s)", path, string(t.body))
			}
			current = value
		case []interface{}:
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

func stringify(value interface{}) string {
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

func (t *testContext) theDatabaseShouldHaveRecords(count int, table string) error {
	m, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("unknown table %q", table)
	}

	var actual int64
	if err := t.db.DbConn.Model(m).Count(&actual).Error; err != nil {
		return fmt.Errorf("failed to count %s records: %w", table, err)
	}
	if actual != int64(count) {
		return fmt.Errorf("expected %d records in %s, got %d", count, table, actual)
	}
	return nil
}

func (t *testContext) theDatabaseShouldHaveARecordWhere(table, column, value string) error {
	count, err := t.countWhere(table, column, value, false)
	if err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("expected a record in %s where %s = %q, found none", table, column, value)
	}
	return nil
}

func (t *testContext) theDatabaseShouldHaveNoRecordWhere(table, column, value string) error {
	count, err := t.countWhere(table, column, value, false)
	if err != nil {
		return err
	}
	if count != 0 {
		return fmt.Errorf("expected no record in %s where %s = %q, found %d", table, column, value, count)
	}
	return nil
}

func (t *testContext) theRecordShouldBeSoftDeleted(table, column, value string) error {
	visible, err := t.countWhere(table, column, value, false)
	if err != nil {
		return err
	}
	if visible != 0 {
		return fmt.Errorf("record in %s where %s = %q is still visible", table, column, value)
	}

	total, err := t.countWhere(table, column, value, true)
	if err != nil {
		return err
	}
	if total == 0 {
		return fmt.Errorf("record in %s where %s = %q was hard deleted", table, column, value)
	}
	return nil
}

func (t *testContext) countWhere(table, column, value string, unscoped bool) (int64, error) {
	m, ok := t.db.GetModel(table)
	if !ok {
		return 0, fmt.Errorf("unknown table %q", table)
	}

	query := t.db.DbConn.Model(m)
	if unscoped {
		query = query.Unscoped()
	}

	var count int64
	err := query.Where(fmt.Sprintf("%s = ?", column), t.substitute(value)).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to query %s: %w", table, err)
	}
	return count, nil
}
