package usecase

import (
	"sort"
	"sync"

	"lunch-backend/internal/model"

	"gorm.io/gorm"
)

// ── Stubs ────────────────────────────────────────────────────────────────────
// Repository in-memory untuk test, meniru semantik conditional write store.

type stubEmployeeRepo struct {
	mu          sync.Mutex
	employees   map[string]model.Employee
	createCalls int
	rejectAll   bool // paksa semua CreateIfAbsent dianggap bentrok
}

func newStubEmployeeRepo(seed ...model.Employee) *stubEmployeeRepo {
	r := &stubEmployeeRepo{employees: make(map[string]model.Employee)}
	for _, e := range seed {
		r.employees[e.Code] = e
	}
	return r
}

func (r *stubEmployeeRepo) FindByCode(code string) (*model.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.employees[code]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &e, nil
}

func (r *stubEmployeeRepo) CreateIfAbsent(employee *model.Employee) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.createCalls++
	if r.rejectAll {
		return false, nil
	}
	if _, exists := r.employees[employee.Code]; exists {
		return false, nil
	}
	r.employees[employee.Code] = *employee
	return true, nil
}

func (r *stubEmployeeRepo) GetAll() ([]model.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubEmployeeRepo) GetRecent(limit int) ([]model.Employee, error) {
	all, _ := r.GetAll()
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *stubEmployeeRepo) Update(employee *model.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.employees[employee.Code] = *employee
	return nil
}

func (r *stubEmployeeRepo) SetActive(code string, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.employees[code]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	e.Active = active
	r.employees[code] = e
	return nil
}

func (r *stubEmployeeRepo) Delete(code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.employees, code)
	return nil
}

type stubLunchLogRepo struct {
	mu   sync.Mutex
	logs map[string]model.LunchLog
	fail error // kalau diisi, RegisterOnce gagal (simulasi DB down)
}

func newStubLunchLogRepo() *stubLunchLogRepo {
	return &stubLunchLogRepo{logs: make(map[string]model.LunchLog)}
}

func (r *stubLunchLogRepo) RegisterOnce(entry *model.LunchLog) (bool, *model.LunchLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail != nil {
		return false, nil, r.fail
	}
	if existing, ok := r.logs[entry.ID]; ok {
		row := existing
		return false, &row, nil
	}
	r.logs[entry.ID] = *entry
	return true, nil, nil
}

func (r *stubLunchLogRepo) GetByDay(dayLocal string) ([]model.LunchLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.LunchLog
	for _, l := range r.logs {
		if l.DayLocal == dayLocal {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RegisteredAt.Before(out[j].RegisteredAt) })
	return out, nil
}

func (r *stubLunchLogRepo) GetByDayRange(startDay, endDay string) ([]model.LunchLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.LunchLog
	for _, l := range r.logs {
		if l.DayLocal >= startDay && l.DayLocal <= endDay {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DayLocal != out[j].DayLocal {
			return out[i].DayLocal < out[j].DayLocal
		}
		return out[i].RegisteredAt.Before(out[j].RegisteredAt)
	})
	return out, nil
}

func (r *stubLunchLogRepo) GetRecent(limit int) ([]model.LunchLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.LunchLog, 0, len(r.logs))
	for _, l := range r.logs {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RegisteredAt.After(out[j].RegisteredAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type stubSectorRepo struct {
	mu      sync.Mutex
	sectors map[string]model.Sector
}

func newStubSectorRepo() *stubSectorRepo {
	return &stubSectorRepo{sectors: make(map[string]model.Sector)}
}

func (r *stubSectorRepo) GetAll() ([]model.Sector, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Sector, 0, len(r.sectors))
	for _, s := range r.sectors {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubSectorRepo) Upsert(sector *model.Sector) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sectors[sector.NormalizedID] = *sector
	return nil
}
