package models_test

import (
	"time"

	"github.com/fincontrol/backend/pkg/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestReceiptValidation() {
	bank := suite.createTestBank(models.Bank{})
	salary := suite.createTestCategory(models.Category{Type: models.CategoryTypeIncome})
	groceries := suite.createTestCategory(models.Category{Type: models.CategoryTypeExpense})
	foreignBank := suite.createTestBank(models.Bank{Owned: models.Owned{UserID: suite.createTestUser(models.User{}).ID}})

	date := time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC)
	amount := decimal.NewFromFloat(4200)

	tests := []struct {
		name    string
		receipt models.Receipt
		err     error
	}{
		{"Valid", models.Receipt{Amount: amount, Date: date, BankID: &bank.ID, CategoryID: &salary.ID}, nil},
		{"Zero amount", models.Receipt{Date: date}, models.ErrAmountNotPositive},
		{"Negative amount", models.Receipt{Amount: amount.Neg(), Date: date}, models.ErrAmountNotPositive},
		{"No date", models.Receipt{Amount: amount}, models.ErrDateMissing},
		{"Recurring without type", models.Receipt{Amount: amount, Date: date, IsRecurring: true}, models.ErrRecurringTypeMissing},
		{"Recurring with invalid type", models.Receipt{Amount: amount, Date: date, IsRecurring: true, RecurringType: "daily"}, models.ErrInvalidRecurringType},
		{"Recurring monthly", models.Receipt{Amount: amount, Date: date, IsRecurring: true, RecurringType: models.RecurringTypeMonthly}, nil},
		{"Bank of other user", models.Receipt{Amount: amount, Date: date, BankID: &foreignBank.ID}, models.ErrInvalidReference},
		{"Expense category", models.Receipt{Amount: amount, Date: date, CategoryID: &groceries.ID}, models.ErrCategoryWrongType},
	}

	for _, tt := range tests {
		tt.receipt.UserID = suite.user.ID
		err := suite.db.Create(&tt.receipt).Error
		assert.ErrorIs(suite.T(), err, tt.err, tt.name)
	}
}

func (suite *TestSuiteStandard) TestReceiptNotRecurringClearsType() {
	receipt := models.Receipt{
		Owned:         models.Owned{UserID: suite.user.ID},
		Amount:        decimal.NewFromFloat(10),
		Date:          time.Now(),
		RecurringType: models.RecurringTypeWeekly,
	}

	require.Nil(suite.T(), suite.db.Create(&receipt).Error)
	assert.Equal(suite.T(), models.RecurringType(""), receipt.RecurringType)
}

func (suite *TestSuiteStandard) TestExpenseDefaults() {
	date := time.Date(2026, 10, 15, 9, 30, 0, 0, time.FixedZone("BRT", -3*60*60))
	expense := suite.createTestExpense(models.Expense{Description: "  Bakery ", Date: date})

	assert.Equal(suite.T(), "Bakery", expense.Description)
	assert.Equal(suite.T(), models.PaymentMethodCash, expense.PaymentMethod)
	assert.Equal(suite.T(), time.UTC, expense.Date.Location())
	assert.True(suite.T(), expense.PaymentDate.Equal(date), "payment date defaults to the date")
}

func (suite *TestSuiteStandard) TestExpenseValidation() {
	salary := suite.createTestCategory(models.Category{Type: models.CategoryTypeIncome})
	unknown := uuid.New()
	date := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	amount := decimal.NewFromFloat(50)

	tests := []struct {
		name    string
		expense models.Expense
		err     error
	}{
		{"Invalid payment method", models.Expense{Amount: amount, Date: date, PaymentMethod: "cheque"}, models.ErrInvalidPaymentMethod},
		{"Income category", models.Expense{Amount: amount, Date: date, CategoryID: &salary.ID}, models.ErrCategoryWrongType},
		{"Unknown bank", models.Expense{Amount: amount, Date: date, BankID: &unknown}, models.ErrInvalidReference},
		{"Zero amount", models.Expense{Date: date}, models.ErrAmountNotPositive},
		{"Credit card", models.Expense{Amount: amount, Date: date, PaymentMethod: models.PaymentMethodCreditCard}, nil},
	}

	for _, tt := range tests {
		tt.expense.UserID = suite.user.ID
		err := suite.db.Create(&tt.expense).Error
		assert.ErrorIs(suite.T(), err, tt.err, tt.name)
	}
}

func (suite *TestSuiteStandard) TestCreditCardBillValidation() {
	closing := time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC)
	due := time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC)
	foreignBank := suite.createTestBank(models.Bank{Owned: models.Owned{UserID: suite.createTestUser(models.User{}).ID}})

	tests := []struct {
		name string
		bill models.CreditCardBill
		err  error
	}{
		{"Valid", models.CreditCardBill{ClosingDate: closing, DueDate: due}, nil},
		{"Due on closing date", models.CreditCardBill{ClosingDate: closing, DueDate: closing}, nil},
		{"Missing dates", models.CreditCardBill{ClosingDate: closing}, models.ErrBillDatesMissing},
		{"Due before closing", models.CreditCardBill{ClosingDate: due, DueDate: closing}, models.ErrDueDateBeforeClosing},
		{"Negative total", models.CreditCardBill{ClosingDate: closing, DueDate: due, TotalAmount: decimal.NewFromFloat(-1)}, models.ErrAmountNegative},
		{"Bank of other user", models.CreditCardBill{ClosingDate: closing, DueDate: due, BankID: &foreignBank.ID}, models.ErrInvalidReference},
	}

	for _, tt := range tests {
		tt.bill.UserID = suite.user.ID
		err := suite.db.Create(&tt.bill).Error
		assert.ErrorIs(suite.T(), err, tt.err, tt.name)
	}
}

func (suite *TestSuiteStandard) TestBankDefaults() {
	bank := suite.createTestBank(models.Bank{Name: " Nubank "})
	assert.Equal(suite.T(), "Nubank", bank.Name)
	assert.Equal(suite.T(), models.BankTypeChecking, bank.Type)

	err := suite.db.Create(&models.Bank{Owned: models.Owned{UserID: suite.user.ID}, Name: "Broker", Type: "crypto"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrInvalidBankType)
}

func (suite *TestSuiteStandard) TestBankSinglePrimary() {
	first := suite.createTestBank(models.Bank{Name: "Nubank", IsPrimary: true})
	other := suite.createTestBank(models.Bank{Owned: models.Owned{UserID: suite.createTestUser(models.User{}).ID}, Name: "Foreign", IsPrimary: true})
	second := suite.createTestBank(models.Bank{Name: "Inter", IsPrimary: true})

	var banks []models.Bank
	require.Nil(suite.T(), suite.db.Where("is_primary").Find(&banks).Error)

	ids := []uuid.UUID{}
	for _, b := range banks {
		ids = append(ids, b.ID)
	}

	assert.ElementsMatch(suite.T(), []uuid.UUID{other.ID, second.ID}, ids, "only the last primary bank of each user stays primary")
	assert.NotContains(suite.T(), ids, first.ID)
}

func (suite *TestSuiteStandard) TestSavingsAccountProgress() {
	target := decimal.NewFromFloat(1000)

	tests := []struct {
		balance  decimal.Decimal
		target   *decimal.Decimal
		progress string
	}{
		{decimal.NewFromFloat(250), &target, "0.25"},
		{decimal.NewFromFloat(1500), &target, "1"},
		{decimal.NewFromFloat(-10), &target, "0"},
		{decimal.NewFromFloat(250), nil, "0"},
	}

	for _, tt := range tests {
		account := models.SavingsAccount{Balance: tt.balance, TargetAmount: tt.target}
		assert.Equal(suite.T(), tt.progress, account.Progress().String())
	}
}

func (suite *TestSuiteStandard) TestSavingsAccountValidation() {
	zero := decimal.Zero

	err := suite.db.Create(&models.SavingsAccount{Owned: models.Owned{UserID: suite.user.ID}, Name: "Fund", TargetAmount: &zero}).Error
	assert.ErrorIs(suite.T(), err, models.ErrAmountNotPositive)

	err = suite.db.Create(&models.SavingsAccount{Owned: models.Owned{UserID: suite.user.ID}}).Error
	assert.ErrorIs(suite.T(), err, models.ErrNameEmpty)
}

func (suite *TestSuiteStandard) TestGoal() {
	deadline := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)

	goal := models.Goal{
		Owned:         models.Owned{UserID: suite.user.ID},
		Name:          " Vacation ",
		TargetAmount:  decimal.NewFromFloat(3000),
		CurrentAmount: decimal.NewFromFloat(1200),
		Deadline:      &deadline,
	}
	require.Nil(suite.T(), suite.db.Create(&goal).Error)

	assert.Equal(suite.T(), "Vacation", goal.Name)
	assert.Equal(suite.T(), models.GoalTypeSaving, goal.Type)
	assert.Equal(suite.T(), "0.4", goal.Progress().String())
	assert.False(suite.T(), goal.Reached())
	assert.False(suite.T(), goal.Overdue(deadline.AddDate(0, 0, -1)))
	assert.True(suite.T(), goal.Overdue(deadline.AddDate(0, 0, 1)))

	err := suite.db.Create(&models.Goal{Owned: models.Owned{UserID: suite.user.ID}, Name: "Nothing"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrAmountNotPositive)

	err = suite.db.Create(&models.Goal{Owned: models.Owned{UserID: suite.user.ID}, Name: "Odd", Type: "hoarding", TargetAmount: decimal.NewFromFloat(1)}).Error
	assert.ErrorIs(suite.T(), err, models.ErrInvalidGoalType)
}

func (suite *TestSuiteStandard) TestGoalSpendingLimit() {
	deadline := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		current  decimal.Decimal
		exceeded bool
	}{
		{"Below the limit", decimal.NewFromFloat(100), false},
		{"At the limit", decimal.NewFromFloat(300), false},
		{"Over the limit", decimal.NewFromFloat(450), true},
	}

	for _, tt := range tests {
		goal := models.Goal{Name: "Restaurants", Type: models.GoalTypeSpending, TargetAmount: decimal.NewFromFloat(300), CurrentAmount: tt.current, Deadline: &deadline}

		assert.Equal(suite.T(), tt.exceeded, goal.Exceeded(), tt.name)
		assert.False(suite.T(), goal.Overdue(deadline.AddDate(0, 0, 1)), "spending limits are never overdue: %s", tt.name)
	}

	saving := models.Goal{Name: "Vacation", Type: models.GoalTypeSaving, TargetAmount: decimal.NewFromFloat(300), CurrentAmount: decimal.NewFromFloat(450)}
	assert.False(suite.T(), saving.Exceeded())
	assert.True(suite.T(), saving.Reached())
}
