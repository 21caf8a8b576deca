package mapping

import (
	"github.com/chris/referral-ledger/pkg/api"
	"github.com/chris/referral-ledger/pkg/ledger"
	"github.com/chris/referral-ledger/pkg/models"
	"github.com/chris/referral-ledger/pkg/partners"
)

// ToApiMoney rounds a domain amount to currency precision for display.
func ToApiMoney(m models.Money) api.Money {
	return m.Round().Decimal
}

// ToDomainMoney wraps an API amount without rounding so that over-precise input is rejected downstream.
func ToDomainMoney(m api.Money) models.Money {
	return models.NewMoney(m)
}

// ToApiWithdrawal converts a domain WithdrawalRequest model to an API Withdrawal model.
func ToApiWithdrawal(w *models.WithdrawalRequest) *api.Withdrawal {
	return &api.Withdrawal{
		Id:            w.Id,
		ReferralCode:  w.ReferralCode,
		PaymentMethod: api.PaymentMethod(w.PaymentMethod),
		AccountNumber: w.AccountNumber,
		Amount:        ToApiMoney(w.Amount),
		Status:        api.WithdrawalStatus(w.Status),
		RequestedAt:   w.RequestedAt,
		PaidAt:        w.PaidAt,
		RejectedAt:    w.RejectedAt,
	}
}

// ToApiWithdrawals converts a list, always returning a non-nil slice.
func ToApiWithdrawals(ws []models.WithdrawalRequest) []api.Withdrawal {
	out := make([]api.Withdrawal, 0, len(ws))
	for i := range ws {
		out = append(out, *ToApiWithdrawal(&ws[i]))
	}
	return out
}

// ToDomainWithdrawalInput converts an API NewWithdrawal to a ledger request.
func ToDomainWithdrawalInput(in *api.NewWithdrawal) ledger.WithdrawalInput {
	return ledger.WithdrawalInput{
		ReferralCode:  in.ReferralCode,
		PaymentMethod: models.PaymentMethod(in.PaymentMethod),
		AccountNumber: in.AccountNumber,
		Amount:        ToDomainMoney(in.Amount),
	}
}

// ToApiPurchase converts a purchase record to its partner-facing view.
func ToApiPurchase(p *models.PurchaseRecord) *api.Purchase {
	return &api.Purchase{
		OrderId:    p.OrderID,
		Buyer:      p.Buyer,
		Amount:     ToApiMoney(p.Amount),
		OccurredAt: p.OccurredAt,
	}
}

// ToApiDashboard converts the ledger's balance summary.
func ToApiDashboard(d *ledger.Dashboard) *api.Dashboard {
	purchases := make([]api.Purchase, 0, len(d.Purchases))
	for i := range d.Purchases {
		purchases = append(purchases, *ToApiPurchase(&d.Purchases[i]))
	}
	return &api.Dashboard{
		Name:             d.Name,
		ReferralCode:     d.ReferralCode,
		TotalEarnings:    ToApiMoney(d.TotalEarnings),
		TotalWithdrawn:   ToApiMoney(d.TotalWithdrawn),
		LifetimeEarnings: ToApiMoney(d.LifetimeEarnings),
		AvailableBalance: ToApiMoney(d.AvailableBalance),
		Purchases:        purchases,
	}
}

// ToApiBulkRejectResult converts either service's bulk result.
func ToApiBulkRejectResult(rejected, skipped []string) *api.BulkRejectResult {
	if rejected == nil {
		rejected = []string{}
	}
	if skipped == nil {
		skipped = []string{}
	}
	return &api.BulkRejectResult{Rejected: rejected, Skipped: skipped}
}

// ToDomainPurchaseInput converts an API NewPurchase to a ledger purchase.
func ToDomainPurchaseInput(in *api.NewPurchase) ledger.PurchaseInput {
	out := ledger.PurchaseInput{OrderID: in.OrderId}
	if in.Amount != nil {
		out.Amount = ToDomainMoney(*in.Amount)
	}
	if in.ReferralCode != nil {
		out.ReferralCode = *in.ReferralCode
	}
	if in.Buyer != nil {
		out.Buyer = *in.Buyer
	}
	if in.OccurredAt != nil {
		out.OccurredAt = in.OccurredAt.UTC()
	}
	return out
}

// ToApiPurchaseResult reports whether a purchase record was written.
func ToApiPurchaseResult(p *models.PurchaseRecord, created bool) *api.PurchaseResult {
	res := &api.PurchaseResult{Created: created}
	if p != nil {
		res.Purchase = ToApiPurchase(p)
	}
	return res
}

// ToDomainApplication converts an API PartnerApplication.
func ToDomainApplication(in *api.PartnerApplication) partners.Application {
	app := partners.Application{
		Name:         in.Name,
		ReferralCode: in.ReferralCode,
		ProfileLink:  in.ProfileLink,
		Password:     in.Password,
	}
	if in.Email != nil {
		app.Email = *in.Email
	}
	if in.Mobile != nil {
		app.Mobile = *in.Mobile
	}
	return app
}

// ToApiPartner converts a domain Partner. The password hash never leaves the directory.
func ToApiPartner(p *models.Partner) *api.Partner {
	return &api.Partner{
		ReferralCode: p.ReferralCode,
		ReferralId:   p.ReferralID,
		Name:         p.Name,
		Email:        p.Email,
		Mobile:       p.Mobile,
		ProfileLink:  p.ProfileLink,
		Status:       api.PartnerStatus(p.Status),
		CreatedAt:    p.CreatedAt,
	}
}

func ToApiPartners(ps []models.Partner) []api.Partner {
	out := make([]api.Partner, 0, len(ps))
	for i := range ps {
		out = append(out, *ToApiPartner(&ps[i]))
	}
	return out
}

func ToApiApplicationReceipt(p *models.Partner) *api.ApplicationReceipt {
	return &api.ApplicationReceipt{
		ReferralCode: p.ReferralCode,
		ReferralId:   p.ReferralID,
		Status:       api.PartnerStatus(p.Status),
	}
}

func ToApiLoginResponse(p *models.Partner) *api.LoginResponse {
	return &api.LoginResponse{
		ReferralCode: p.ReferralCode,
		Name:         p.Name,
		Email:        p.Email,
	}
}

// FilterWithdrawals keeps the requests in the given status. A nil status keeps everything.
func FilterWithdrawals(ws []models.WithdrawalRequest, status *api.WithdrawalStatus) []models.WithdrawalRequest {
	if status == nil {
		return ws
	}
	out := make([]models.WithdrawalRequest, 0, len(ws))
	for _, w := range ws {
		if w.Status == models.WithdrawalStatus(*status) {
			out = append(out, w)
		}
	}
	return out
}

// FilterPartners keeps the partners in the given status. A nil status keeps everything.
func FilterPartners(ps []models.Partner, status *api.PartnerStatus) []models.Partner {
	if status == nil {
		return ps
	}
	out := make([]models.Partner, 0, len(ps))
	for _, p := range ps {
		if p.Status == models.PartnerStatus(*status) {
			out = append(out, p)
		}
	}
	return out
}
