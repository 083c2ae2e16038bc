package billing

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/portalcondominio/clube-api/internal/domain"
	"github.com/portalcondominio/clube-api/pkg/utils"
)

// fakeFinancialStore reproduz em memória a chave única (anunciante, mês)
// e as condições de status das queries reais
type fakeFinancialStore struct {
	mu      sync.Mutex
	records map[string]*domain.FinancialRecord
	names   map[string]string
	writes  int
}

func newFakeFinancialStore() *fakeFinancialStore {
	return &fakeFinancialStore{
		records: make(map[string]*domain.FinancialRecord),
		names:   make(map[string]string),
	}
}

func storeKey(advertiserID string, month time.Time) string {
	return advertiserID + "|" + utils.MonthKey(month)
}

func (f *fakeFinancialStore) put(record *domain.FinancialRecord) {
	f.mu.Lock()
	defer f.mu.Unlock()

	copied := *record
	f.records[storeKey(record.AdvertiserID, record.ReferenceMonth)] = &copied
}

func (f *fakeFinancialStore) get(advertiserID string, month time.Time) *domain.FinancialRecord {
	f.mu.Lock()
	defer f.mu.Unlock()

	record, ok := f.records[storeKey(advertiserID, month)]
	if !ok {
		return nil
	}
	copied := *record
	return &copied
}

func (f *fakeFinancialStore) FindByAdvertiserAndMonth(_ context.Context, advertiserID string, month time.Time) (*domain.FinancialRecord, error) {
	return f.get(advertiserID, month), nil
}

func (f *fakeFinancialStore) GetByID(_ context.Context, id string) (*domain.FinancialRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, record := range f.records {
		if record.ID == id {
			copied := *record
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeFinancialStore) Upsert(_ context.Context, record *domain.FinancialRecord) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := storeKey(record.AdvertiserID, record.ReferenceMonth)
	if existing, ok := f.records[key]; ok {
		if existing.Status == domain.StatusPago {
			return false, nil
		}
		existing.AmountDue = record.AmountDue
		existing.DueDate = record.DueDate
		record.ID = existing.ID
		record.Status = existing.Status
		f.writes++
		return true, nil
	}

	copied := *record
	f.records[key] = &copied
	f.writes++
	return true, nil
}

func (f *fakeFinancialStore) DeleteIfUnpaid(_ context.Context, advertiserID string, month time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := storeKey(advertiserID, month)
	existing, ok := f.records[key]
	if !ok || existing.Status == domain.StatusPago {
		return 0, nil
	}

	delete(f.records, key)
	f.writes++
	return 1, nil
}

func (f *fakeFinancialStore) BulkMarkOverdue(_ context.Context, today time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var count int64
	for _, record := range f.records {
		if record.Status == domain.StatusPendente && record.DueDate.Before(today) {
			record.Status = domain.StatusAtrasado
			count++
		}
	}
	return count, nil
}

func (f *fakeFinancialStore) MarkAsPaid(_ context.Context, id string, amount decimal.Decimal, paidAt time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, record := range f.records {
		if record.ID == id && record.Status.IsOpen() {
			record.Status = domain.StatusPago
			record.AmountPaid = decimal.NewNullDecimal(amount)
			record.PaidAt = &paidAt
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeFinancialStore) ListRecords(_ context.Context, _ domain.FinancialRecordFilter) ([]*domain.FinancialRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	records := make([]*domain.FinancialRecord, 0, len(f.records))
	for _, record := range f.records {
		copied := *record
		records = append(records, &copied)
	}
	return records, nil
}

func (f *fakeFinancialStore) ListByMonthWithAdvertiser(_ context.Context, month time.Time) ([]*domain.FinancialRecordWithAdvertiser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	items := make([]*domain.FinancialRecordWithAdvertiser, 0)
	for _, record := range f.records {
		if utils.MonthKey(record.ReferenceMonth) != utils.MonthKey(month) {
			continue
		}
		items = append(items, &domain.FinancialRecordWithAdvertiser{
			FinancialRecord: *record,
			CompanyName:     f.names[record.AdvertiserID],
		})
	}

	sort.Slice(items, func(i, j int) bool {
		iPaid, jPaid := items[i].IsPaid(), items[j].IsPaid()
		if iPaid != jPaid {
			return !iPaid
		}
		return items[i].CompanyName < items[j].CompanyName
	})

	return items, nil
}
