package steps

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/YenChengLai/expense-tracker-v2/internal/integration/persistence/model"
)

func (t *testContext) registerSeedSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, t.aUserExists)
	ctx.Step(`^an admin exists with email "([^"]*)" and password "([^"]*)"$`, t.anAdminExists)
	ctx.Step(`^a pending user exists with email "([^"]*)"$`, t.aPendingUserExists)
	ctx.Step(`^I am logged in as "([^"]*)" with password "([^"]*)"$`, t.iAmLoggedIn)
	ctx.Step(`^a category "([^"]*)" exists for the current user$`, t.aCategoryExists)
	ctx.Step(`^a universal category "([^"]*)" exists$`, t.aUniversalCategoryExists)
	ctx.Step(`^the current user has the following transactions:$`, t.theUserHasTransactions)
	ctx.Step(`^a password reset token "([^"]*)" exists for "([^"]*)"$`, t.aResetTokenExists)
	ctx.Step(`^an expired password reset token "([^"]*)" exists for "([^"]*)"$`, t.anExpiredResetTokenExists)
}

func (t *testContext) seedUser(email, password, role string, approved bool) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:           uuid.New(),
		Email:        email,
		Name:         "Test User",
		PasswordHash: string(hash),
		Role:         role,
		Approved:     approved,
		Currency:     "USD",
		DateFormat:   "YYYY-MM-DD",
		Language:     "en",
		Theme:        "system",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if approved {
		user.ApprovedAt = &now
	}

	if err := t.db.DbConn.Create(user).Error; err != nil {
		return fmt.Errorf("failed to seed user %s: %w", email, err)
	}

	t.placeholders["user_id"] = user.ID.String()
	return nil
}

func (t *testContext) aUserExists(email, password string) error {
	return t.seedUser(email, password, "user", true)
}

func (t *testContext) anAdminExists(email, password string) error {
	return t.seedUser(email, password, "admin", true)
}

func (t *testContext) aPendingUserExists(email string) error {
	return t.seedUser(email, "Password123!", "user", false)
}

// iAmLoggedIn authenticates through the real login endpoint so every
// scenario exercises the production token path.
func (t *testContext) iAmLoggedIn(email, password string) error {
	payload, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return err
	}

	if err := t.doRequest("POST", "/api/v1/auth/login", payload); err != nil {
		return err
	}
	if t.response.StatusCode != 200 {
		return fmt.Errorf("login failed for %s: status %d (body: %s)", email, t.response.StatusCode, string(t.body))
	}
	if _, ok := t.placeholders["access_token"]; !ok {
		return fmt.Errorf("login response did not contain an access token")
	}
	return nil
}

func (t *testContext) seedCategory(name string, ownerID *uuid.UUID) error {
	now := time.Now().UTC()
	category := &model.CategoryModel{
		ID:        uuid.New(),
		Name:      name,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := t.db.DbConn.Create(category).Error; err != nil {
		return fmt.Errorf("failed to seed category %s: %w", name, err)
	}

	t.placeholders["category_id"] = category.ID.String()
	return nil
}

func (t *testContext) aCategoryExists(name string) error {
	ownerID, err := t.currentUserID()
	if err != nil {
		return err
	}
	return t.seedCategory(name, &ownerID)
}

func (t *testContext) aUniversalCategoryExists(name string) error {
	return t.seedCategory(name, nil)
}

// theUserHasTransactions seeds rows from a table with columns:
// amount | category | type | date | description (description optional).
func (t *testContext) theUserHasTransactions(table *godog.Table) error {
	userID, err := t.currentUserID()
	if err != nil {
		return err
	}
	if len(table.Rows) < 2 {
		return fmt.Errorf("transaction table needs a header row and at least one data row")
	}

	columns := make(map[string]int)
	for i, cell := range table.Rows[0].Cells {
		columns[cell.Value] = i
	}
	for _, required := range []string{"amount", "category", "type", "date"} {
		if _, ok := columns[required]; !ok {
			return fmt.Errorf("transaction table is missing column %q", required)
		}
	}

	now := time.Now().UTC()
	for _, row := range table.Rows[1:] {
		amount, err := decimal.NewFromString(row.Cells[columns["amount"]].Value)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", row.Cells[columns["amount"]].Value, err)
		}
		date, err := time.Parse("2006-01-02", row.Cells[columns["date"]].Value)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", row.Cells[columns["date"]].Value, err)
		}

		transaction := &model.TransactionModel{
			ID:        uuid.New(),
			UserID:    userID,
			Amount:    amount,
			Currency:  "USD",
			Category:  row.Cells[columns["category"]].Value,
			Type:      row.Cells[columns["type"]].Value,
			Date:      date,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if i, ok := columns["description"]; ok && i < len(row.Cells) {
			transaction.Description = row.Cells[i].Value
		}

		if err := t.db.DbConn.Create(transaction).Error; err != nil {
			return fmt.Errorf("failed to seed transaction: %w", err)
		}
		t.placeholders["transaction_id"] = transaction.ID.String()
	}
	return nil
}

func (t *testContext) seedResetToken(token, email string, expiresAt time.Time) error {
	var user model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&user).Error; err != nil {
		return fmt.Errorf("no seeded user with email %s: %w", email, err)
	}

	row := &model.PasswordResetTokenModel{
		ID:        uuid.New(),
		Token:     token,
		UserID:    user.ID,
		Email:     email,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	if err := t.db.DbConn.Create(row).Error; err != nil {
		return fmt.Errorf("failed to seed reset token: %w", err)
	}

	t.placeholders["reset_token"] = token
	return nil
}

func (t *testContext) aResetTokenExists(token, email string) error {
	return t.seedResetToken(token, email, time.Now().UTC().Add(time.Hour))
}

func (t *testContext) anExpiredResetTokenExists(token, email string) error {
	return t.seedResetToken(token, email, time.Now().UTC().Add(-time.Hour))
}

func (t *testContext) currentUserID() (uuid.UUID, error) {
	raw, ok := t.placeholders["user_id"]
	if !ok {
		return uuid.Nil, fmt.Errorf("no user has been seeded in this scenario")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid seeded user id %q: %w", raw, err)
	}
	return id, nil
}
