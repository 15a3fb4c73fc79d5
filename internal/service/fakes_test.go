package service

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tedsearch/tedsearch/internal/config"
	"github.com/tedsearch/tedsearch/internal/model"
)

// Hand-written fakes for the storage interfaces. They keep everything in
// maps and slices so pipeline tests run without Postgres.

func assertDirEmpty(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func testConfig(tempDir string) *config.Config {
	cfg := &config.Config{TempDir: tempDir}
	cfg.TED.SupportedSchemas = []string{"R2.0.9.S02.E01", "R2.0.9.S03.E01"}
	cfg.TED.TargetCPVCode = "33600000"
	cfg.TED.TargetContractNatureCode = "2"
	cfg.TED.ExportLanguage = "EN"
	cfg.TED.PublicationTimezone = "Europe/Brussels"
	return cfg
}

type fakeRefStore struct {
	countries           map[string]model.Country
	currencies          map[string]model.Currency
	activatedCountries  map[int]bool
	activatedCurrencies map[int]bool
}

func newFakeRefStore() *fakeRefStore {
	return &fakeRefStore{
		countries: map[string]model.Country{
			"PL": {ID: 1, ISOCode: "PL", Name: "Poland"},
			"DE": {ID: 2, ISOCode: "DE", Name: "Germany"},
		},
		currencies: map[string]model.Currency{
			"PLN": {ID: 1, ISOCode: "PLN", Name: "Polish zloty"},
			"EUR": {ID: 2, ISOCode: "EUR", Name: "Euro"},
		},
		activatedCountries:  map[int]bool{},
		activatedCurrencies: map[int]bool{},
	}
}

func (f *fakeRefStore) CountryByISO(ctx context.Context, code string) (*model.Country, error) {
	c, ok := f.countries[code]
	if !ok {
		return nil, fmt.Errorf("country %q not found", code)
	}
	return &c, nil
}

func (f *fakeRefStore) CurrencyByISO(ctx context.Context, code string) (*model.Currency, error) {
	c, ok := f.currencies[code]
	if !ok {
		return nil, fmt.Errorf("currency %q not found", code)
	}
	return &c, nil
}

func (f *fakeRefStore) ActivateCountry(ctx context.Context, id int) error {
	f.activatedCountries[id] = true
	return nil
}

func (f *fakeRefStore) ActivateCurrency(ctx context.Context, id int) error {
	f.activatedCurrencies[id] = true
	return nil
}

type fakeNoticeStore struct {
	notices map[string]*model.ContractNotice
	nextID  int
}

func newFakeNoticeStore() *fakeNoticeStore {
	return &fakeNoticeStore{notices: map[string]*model.ContractNotice{}, nextID: 1}
}

func (f *fakeNoticeStore) Exists(ctx context.Context, ojsRef string) (bool, error) {
	_, ok := f.notices[ojsRef]
	return ok, nil
}

func (f *fakeNoticeStore) GetByOJSRef(ctx context.Context, ojsRef string) (*model.ContractNotice, error) {
	return f.notices[ojsRef], nil
}

func (f *fakeNoticeStore) Create(ctx context.Context, n *model.ContractNotice) error {
	n.ID = f.nextID
	f.nextID++
	n.AddedAt = time.Now()
	f.notices[n.OJSRef] = n
	return nil
}

type fakeAwardStore struct {
	awards map[string]*model.ContractAwardNotice
	nextID int
}

func newFakeAwardStore() *fakeAwardStore {
	return &fakeAwardStore{awards: map[string]*model.ContractAwardNotice{}, nextID: 1}
}

func (f *fakeAwardStore) Exists(ctx context.Context, ojsRef string) (bool, error) {
	_, ok := f.awards[ojsRef]
	return ok, nil
}

func (f *fakeAwardStore) Create(ctx context.Context, a *model.ContractAwardNotice) error {
	a.ID = f.nextID
	f.nextID++
	a.AddedAt = time.Now()
	f.awards[a.OJSRef] = a
	return nil
}

type fakeLotStore struct {
	lots    []model.Lot
	updated map[int]int // lot ID -> update count
	nextID  int
}

func newFakeLotStore() *fakeLotStore {
	return &fakeLotStore{updated: map[int]int{}, nextID: 1}
}

func (f *fakeLotStore) CreateBatch(ctx context.Context, lots []model.Lot) error {
	for _, l := range lots {
		l.ID = f.nextID
		f.nextID++
		f.lots = append(f.lots, l)
	}
	return nil
}

func (f *fakeLotStore) ListByNotice(ctx context.Context, noticeID int) ([]model.Lot, error) {
	var out []model.Lot
	for _, l := range f.lots {
		if l.ContractNoticeID == noticeID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLotStore) Update(ctx context.Context, l *model.Lot) error {
	for i := range f.lots {
		if f.lots[i].ID == l.ID {
			f.lots[i] = *l
			f.updated[l.ID]++
			return nil
		}
	}
	return fmt.Errorf("lot %d not found", l.ID)
}

func (f *fakeLotStore) byLotNo(noticeID, lotNo int) *model.Lot {
	for i := range f.lots {
		if f.lots[i].ContractNoticeID == noticeID && f.lots[i].LotNo == lotNo {
			return &f.lots[i]
		}
	}
	return nil
}

type statusTransition struct {
	state model.PackageState
	msg   string
}

type fakeStatusStore struct {
	statuses    map[string]*model.PackageStatus
	transitions []statusTransition
	completed   map[string]bool // YYYY-MM-DD -> done
	nextID      int
}

func newFakeStatusStore() *fakeStatusStore {
	return &fakeStatusStore{
		statuses:  map[string]*model.PackageStatus{},
		completed: map[string]bool{},
		nextID:    1,
	}
}

func (f *fakeStatusStore) GetOrCreate(ctx context.Context, fileName string) (*model.PackageStatus, error) {
	if st, ok := f.statuses[fileName]; ok {
		return st, nil
	}
	fileDate, err := model.FileDateFromName(fileName)
	if err != nil {
		return nil, err
	}
	st := &model.PackageStatus{
		ID:       f.nextID,
		FileName: fileName,
		FileDate: fileDate,
		State:    model.StateIdle,
	}
	f.nextID++
	f.statuses[fileName] = st
	return st, nil
}

func (f *fakeStatusStore) SetState(ctx context.Context, st *model.PackageStatus, state model.PackageState, msg string) error {
	st.State = state
	if msg != "" {
		st.StatusMsg.String = msg
		st.StatusMsg.Valid = true
	}
	f.transitions = append(f.transitions, statusTransition{state: state, msg: msg})
	return nil
}

func (f *fakeStatusStore) CompletedForDate(ctx context.Context, date time.Time) (bool, error) {
	return f.completed[date.Format("2006-01-02")], nil
}

// fakeSource serves a pre-staged archive from the local filesystem.
type fakeSource struct {
	fileName    string
	archivePath string
}

func (f *fakeSource) CheckDailyPackage(ctx context.Context, date time.Time) (string, error) {
	if f.fileName == "" {
		return "", nil
	}
	return f.fileName, nil
}

func (f *fakeSource) RetrieveDailyPackage(ctx context.Context, fileName, destDir string) (string, error) {
	return f.archivePath, nil
}
