package usecases

import (
	"context"
	"fmt"
	"time"

	"hubble-workspace/internal/billing/domain"
	"hubble-workspace/internal/logger"
	shareddomain "hubble-workspace/internal/shared_kernel/domain"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
)

type SeedCounts struct {
	Plans         int `mapstructure:"plans"`
	Accounts      int `mapstructure:"accounts"`
	Subscriptions int `mapstructure:"subscriptions"`
	Transactions  int `mapstructure:"transactions"`
	Invoices      int `mapstructure:"invoices"`
}

func DefaultSeedCounts() SeedCounts {
	return SeedCounts{
		Plans:         10,
		Accounts:      100,
		Subscriptions: 500,
		Transactions:  100,
		Invoices:      100,
	}
}

// Seeder fills a repository with fake but consistent records. The same seed
// and reference time always produce the same records.
type Seeder struct {
	repository RecordRepository
	log        logger.Logger
	faker      *gofakeit.Faker
	counts     SeedCounts
	now        time.Time
}

func NewSeeder(repository RecordRepository, log logger.Logger, seed int64, counts SeedCounts, now time.Time) *Seeder {
	return &Seeder{
		repository: repository,
		log:        log,
		faker:      gofakeit.New(seed),
		counts:     counts,
		now:        now.UTC(),
	}
}

func (s *Seeder) Seed(ctx context.Context) error {
	if s.counts.Plans == 0 || s.counts.Accounts == 0 {
		s.log.Warnw("skipping seed without plans or accounts", "plans", s.counts.Plans, "accounts", s.counts.Accounts)
		return nil
	}

	plans := make([]domain.Plan, s.counts.Plans)
	for i := range plans {
		plans[i] = s.plan()
	}
	accounts := make([]domain.Account, s.counts.Accounts)
	for i := range accounts {
		accounts[i] = s.account()
	}
	subscriptions := make([]domain.Subscription, s.counts.Subscriptions)
	for i := range subscriptions {
		subscriptions[i] = s.subscription(plans, accounts)
	}

	if err := insert(ctx, s, shareddomain.ResourcePlans, plans); err != nil {
		return err
	}
	if err := insert(ctx, s, shareddomain.ResourceAccounts, accounts); err != nil {
		return err
	}
	if err := insert(ctx, s, shareddomain.ResourceSubscriptions, subscriptions); err != nil {
		return err
	}
	if len(subscriptions) == 0 {
		s.log.Infow("seeded records", "plans", len(plans), "accounts", len(accounts))
		return nil
	}

	transactions := make([]domain.Transaction, s.counts.Transactions)
	for i := range transactions {
		transactions[i] = s.transaction(subscriptions)
	}
	invoices := make([]domain.Invoice, s.counts.Invoices)
	for i := range invoices {
		invoices[i] = s.invoice(accounts, subscriptions)
	}

	if err := insert(ctx, s, shareddomain.ResourceTransactions, transactions); err != nil {
		return err
	}
	if err := insert(ctx, s, shareddomain.ResourceInvoices, invoices); err != nil {
		return err
	}

	s.log.Infow("seeded records",
		"plans", len(plans),
		"accounts", len(accounts),
		"subscriptions", len(subscriptions),
		"transactions", len(transactions),
		"invoices", len(invoices))
	return nil
}

type recordable interface {
	Record() shareddomain.Record
}

func insert[T recordable](ctx context.Context, s *Seeder, resource shareddomain.Resource, models []T) error {
	for _, model := range models {
		record := model.Record()
		record[shareddomain.FieldID] = s.faker.UUID()
		if err := s.repository.Insert(ctx, resource, record); err != nil {
			return fmt.Errorf("seeding %s: %w", resource, err)
		}
	}
	s.log.Debugw("seeded resource", "resource", resource.String(), "count", len(models))
	return nil
}

func (s *Seeder) past() time.Time {
	return s.faker.DateRange(s.now.AddDate(-1, 0, 0), s.now).UTC()
}

func (s *Seeder) future() time.Time {
	return s.faker.DateRange(s.now, s.now.AddDate(1, 0, 0)).UTC()
}

func (s *Seeder) amount() decimal.Decimal {
	return decimal.NewFromInt(int64(s.faker.Number(0, 99999)))
}

func (s *Seeder) unit() domain.PeriodUnit {
	return domain.PeriodUnits[s.faker.Number(0, len(domain.PeriodUnits)-1)]
}

func (s *Seeder) plan() domain.Plan {
	return domain.Plan{
		Identifier:           shareddomain.ID(s.faker.UUID()),
		Name:                 s.faker.ProductName(),
		Code:                 s.faker.Word(),
		Description:          s.faker.Paragraph(1, 3, 12, " "),
		BillingPeriod:        s.faker.Number(0, 180),
		BillingPeriodUnit:    s.unit(),
		PricePerBillingCycle: s.amount(),
		SetupFee:             s.amount(),
		TrialPeriod:          s.faker.Number(0, 180),
		TrialPeriodUnit:      s.unit(),
		Starts:               s.future(),
		Term:                 s.faker.Number(0, 180),
		TermUnit:             s.unit(),
		Renews:               s.faker.Bool(),
		CreatedAt:            s.past(),
	}
}

func (s *Seeder) account() domain.Account {
	return domain.Account{
		Identifier:   shareddomain.ID(s.faker.UUID()),
		UserName:     s.faker.Username(),
		FirstName:    s.faker.FirstName(),
		LastName:     s.faker.LastName(),
		EmailAddress: s.faker.Email(),
		PhoneNumber:  s.faker.Phone(),
		AddressLine1: s.faker.Street(),
		AddressLine2: fmt.Sprintf("Apt. %d", s.faker.Number(1, 999)),
		City:         s.faker.City(),
		State:        s.faker.State(),
		Country:      s.faker.Country(),
		ZipCode:      s.faker.Zip(),
		CreatedAt:    s.past(),
	}
}

func (s *Seeder) subscription(plans []domain.Plan, accounts []domain.Account) domain.Subscription {
	plan := plans[s.faker.Number(0, len(plans)-1)]
	account := accounts[s.faker.Number(0, len(accounts)-1)]

	subscription := domain.NewSubscription(shareddomain.ID(s.faker.UUID()), plan, account)
	subscription.Quantity = s.faker.Number(0, 100)
	subscription.TotalBillingCycles = s.faker.Number(0, 60)
	subscription.RemainingBillingCycles = s.faker.Number(0, 60)
	subscription.TrialStart = s.future()
	subscription.TrialEnd = s.future()
	subscription.CollectionMethod = domain.CollectionMethods[s.faker.Number(0, len(domain.CollectionMethods)-1)]
	subscription.CreatedAt = s.past()
	subscription.UpdatedAt = s.past()
	return subscription
}

func (s *Seeder) transaction(subscriptions []domain.Subscription) domain.Transaction {
	return domain.Transaction{
		Identifier:    shareddomain.ID(s.faker.UUID()),
		ReferenceID:   s.faker.LetterN(10),
		Subscription:  subscriptions[s.faker.Number(0, len(subscriptions)-1)].Ref(),
		Comments:      s.faker.Sentence(12),
		Amount:        s.amount(),
		Tax:           s.amount(),
		Action:        domain.TransactionActions[s.faker.Number(0, len(domain.TransactionActions)-1)],
		PaymentMethod: domain.PaymentMethods[s.faker.Number(0, len(domain.PaymentMethods)-1)],
		Refundable:    s.faker.Bool(),
		CreatedAt:     s.past(),
	}
}

func (s *Seeder) invoice(accounts []domain.Account, subscriptions []domain.Subscription) domain.Invoice {
	items := make([]domain.InvoiceItem, s.faker.Number(1, domain.MaxInvoiceItems))
	for i := range items {
		items[i] = domain.InvoiceItem{
			StartDate:   s.past(),
			EndDate:     s.past(),
			Description: s.faker.Sentence(6),
			Quantity:    s.faker.Number(1, 100),
			Price:       s.amount(),
			Subtotal:    s.amount(),
			AmountDue:   s.amount(),
		}
	}

	return domain.Invoice{
		Identifier:         shareddomain.ID(s.faker.UUID()),
		InvoiceNumber:      s.faker.Number(domain.MinInvoiceNumber, 99999),
		PostedOn:           s.past(),
		DueOn:              s.future(),
		Account:            accounts[s.faker.Number(0, len(accounts)-1)].Ref(),
		Status:             domain.InvoiceStatuses[s.faker.Number(0, len(domain.InvoiceStatuses)-1)],
		Total:              s.amount(),
		Subtotal:           s.amount(),
		Paid:               s.amount(),
		AmountDue:          s.amount(),
		Origin:             domain.InvoiceOrigins[s.faker.Number(0, len(domain.InvoiceOrigins)-1)],
		Subscription:       subscriptions[s.faker.Number(0, len(subscriptions)-1)].Ref(),
		Notes:              s.faker.Sentence(10),
		TermsAndConditions: s.faker.Paragraph(1, 2, 10, " "),
		Items:              items,
		CreatedAt:          s.past(),
	}
}
