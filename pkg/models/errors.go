package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrInvalidReference = errors.New("the referenced resource does not exist")

	ErrEmailInUse           = errors.New("a user with this email address already exists")
	ErrAmountNotPositive    = errors.New("the amount must be larger than zero")
	ErrAmountNegative       = errors.New("the amount must not be negative")
	ErrDateMissing          = errors.New("the date is required")
	ErrNameEmpty            = errors.New("the name must not be empty")
	ErrInvalidBankType      = errors.New("the bank type must be one of checking, savings, investment, wallet, other")
	ErrInvalidCategoryType  = errors.New("the category type must be one of income, expense")
	ErrInvalidPaymentMethod = errors.New("the payment method must be one of cash, debit, pix, transfer, credit_card")
	ErrInvalidRecurringType = errors.New("the recurring type must be one of weekly, monthly, yearly")
	ErrRecurringTypeMissing = errors.New("a recurring type is required for recurring resources")
	ErrInvalidGoalType      = errors.New("the goal type must be one of saving, spending")
	ErrCategorySelfParent   = errors.New("a category cannot be its own parent")
	ErrCategoryDepth        = errors.New("a subcategory cannot be the parent of another category")
	ErrCategoryHasChildren  = errors.New("a category with subcategories cannot become a subcategory")
	ErrCategoryTypeMismatch = errors.New("a subcategory must have the same type as its parent")
	ErrCategoryWrongType    = errors.New("the category has the wrong type for this resource")
	ErrBillDatesMissing     = errors.New("closing date and due date are required")
	ErrDueDateBeforeClosing = errors.New("the due date must not be before the closing date")
	ErrRulePatternEmpty     = errors.New("the pattern of a category rule must not be empty")
	ErrInvalidCurrency      = errors.New("the currency must be an ISO 4217 code")
	ErrInvalidLocale        = errors.New("the locale must be a BCP 47 language tag")
)
