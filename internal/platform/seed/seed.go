package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/khazna-app/khazna_backend/internal/core/domain"
	portsrepo "github.com/khazna-app/khazna_backend/internal/core/ports/repositories"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InitialRates is the static rate table seed, relative to USD.
func InitialRates() []domain.CurrencyRate {
	return []domain.CurrencyRate{
		{Code: "USD", Name: "دولار أمريكي", Rate: decimal.NewFromInt(1)},
		{Code: "EUR", Name: "يورو", Rate: decimal.RequireFromString("0.92")},
		{Code: "EGP", Name: "جنيه مصري", Rate: decimal.RequireFromString("48.50")},
		{Code: "SAR", Name: "ريال سعودي", Rate: decimal.RequireFromString("3.75")},
		{Code: "AED", Name: "درهم إماراتي", Rate: decimal.RequireFromString("3.67")},
		{Code: "SDG", Name: "جنيه سوداني", Rate: decimal.RequireFromString("580.00")},
	}
}

// DemoData populates the directory and the ledger with the demo records and
// designates the admin user as the current actor.
func DemoData(ctx context.Context, users portsrepo.UserRepositoryFacade, clients portsrepo.ClientRepositoryFacade, ledger portsrepo.TransactionWriter) error {
	now := time.Now()

	admin := domain.User{
		UserID:    uuid.NewString(),
		Name:      "أماني ريديس",
		Email:     "amenirdis@pharaohs.com",
		Role:      domain.RoleAdmin,
		AvatarURL: "https://picsum.photos/100/100",
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	accountant := domain.User{
		UserID: uuid.NewString(),
		Name:   "تحارقا",
		Email:  "taharqa@pharaohs.com",
		Role:   domain.RoleAccountant,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	for _, user := range []domain.User{admin, accountant} {
		if err := users.SaveUser(ctx, user); err != nil {
			return fmt.Errorf("failed to seed user %q: %w", user.Name, err)
		}
	}
	if err := users.SetCurrentUser(ctx, admin.UserID); err != nil {
		return fmt.Errorf("failed to designate seeded current user: %w", err)
	}

	karnak := domain.Client{
		ClientID:    uuid.NewString(),
		Name:        "معبد الكرنك للتوريدات",
		Type:        domain.ClientVendor,
		ContactInfo: "sales@karnak.com",
		Notes:       "مورد مواد بناء رئيسي",
		AuditFields: domain.AuditFields{CreatedAt: now, CreatedBy: admin.UserID, LastUpdatedAt: now, LastUpdatedBy: admin.UserID},
	}
	nile := domain.Client{
		ClientID:    uuid.NewString(),
		Name:        "شركة النيل للشحن",
		Type:        domain.ClientBeneficiary,
		ContactInfo: "+2010000000",
		Notes:       "خدمات لوجستية",
		AuditFields: domain.AuditFields{CreatedAt: now, CreatedBy: admin.UserID, LastUpdatedAt: now, LastUpdatedBy: admin.UserID},
	}
	for _, client := range []domain.Client{karnak, nile} {
		if err := clients.SaveClient(ctx, client); err != nil {
			return fmt.Errorf("failed to seed client %q: %w", client.Name, err)
		}
	}

	day := func(d int) time.Time { return time.Date(2023, 10, d, 0, 0, 0, 0, time.UTC) }
	txns := []domain.Transaction{
		{Description: "بيع محاصيل قمح", Amount: decimal.NewFromInt(15000), CurrencyCode: "EGP", Date: day(25), Kind: domain.KindIncome, Category: "زراعة", CreatedBy: admin.Name, Notes: "محصول الموسم الشتوي"},
		{Description: "ترميم أعمدة المعبد", Amount: decimal.NewFromInt(5000), CurrencyCode: "EGP", Date: day(26), Kind: domain.KindExpense, Category: "صيانة", ClientID: karnak.ClientID, CreatedBy: accountant.Name},
		{Description: "تجارة ذهب", Amount: decimal.NewFromInt(45000), CurrencyCode: "EGP", Date: day(27), Kind: domain.KindIncome, Category: "تجارة", CreatedBy: admin.Name},
		{Description: "شراء ورق بردي", Amount: decimal.NewFromInt(1200), CurrencyCode: "EGP", Date: day(28), Kind: domain.KindExpense, Category: "أدوات مكتبية", CreatedBy: accountant.Name},
		{Description: "رواتب الحراس", Amount: decimal.NewFromInt(8000), CurrencyCode: "EGP", Date: day(29), Kind: domain.KindExpense, Category: "رواتب", CreatedBy: admin.Name},
	}
	// Saved oldest first so the prepend-ordered ledger reads newest first.
	for _, txn := range txns {
		txn.TransactionID = uuid.NewString()
		txn.CreatedAt = now
		if err := ledger.SaveTransaction(ctx, txn); err != nil {
			return fmt.Errorf("failed to seed transaction %q: %w", txn.Description, err)
		}
	}

	return nil
}
