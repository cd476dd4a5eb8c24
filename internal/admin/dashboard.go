package admin

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"diaa-designs-backend/internal/models"
	"diaa-designs-backend/internal/orders"
	"diaa-designs-backend/internal/repository"
)

// Live channel states as exposed on the stats payload.
const (
	LiveConnected = "connected"
	LiveDegraded  = "degraded"
)

type CVRepo interface {
	ListAll(ctx context.Context) ([]models.CVOrder, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.CVOrder, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SubscribeInserts(cb func(models.CVOrder)) repository.Subscription
}

type LogoRepo interface {
	ListAll(ctx context.Context) ([]models.LogoOrder, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.LogoOrder, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SubscribeInserts(cb func(models.LogoOrder)) repository.Subscription
}

// Event is what the dashboard stream delivers: a pushed order or a
// connectivity transition of the live channel.
type Event struct {
	Kind       string            `json:"kind"`
	CVOrder    *models.CVOrder   `json:"cv_order,omitempty"`
	LogoOrder  *models.LogoOrder `json:"logo_order,omitempty"`
	LiveStatus string            `json:"live_status,omitempty"`
}

// Dashboard keeps both order lists live: initial fetch plus insert pushes,
// deduplicated by record id so a list refresh racing an in-flight insert
// cannot produce duplicate entries. Mutations go through the repository and
// reconcile local state only on confirmed success.
type Dashboard struct {
	cv   CVRepo
	logo LogoRepo

	mu         sync.RWMutex
	cvOrders   []models.CVOrder
	logoOrders []models.LogoOrder
	liveStatus string

	cvSub   repository.Subscription
	logoSub repository.Subscription

	subsMu  sync.Mutex
	subs    map[int]chan Event
	nextSub int
}

func NewDashboard(cv CVRepo, logo LogoRepo) *Dashboard {
	return &Dashboard{
		cv:         cv,
		logo:       logo,
		liveStatus: LiveDegraded,
		subs:       make(map[int]chan Event),
	}
}

// Load fetches both collections. Rows already pushed while the fetch was in
// flight survive the merge.
func (d *Dashboard) Load(ctx context.Context) error {
	cvList, err := d.cv.ListAll(ctx)
	if err != nil {
		return err
	}
	logoList, err := d.logo.ListAll(ctx)
	if err != nil {
		return err
	}

	d.mu.Lock()
	d.cvOrders = mergeCV(cvList, d.cvOrders)
	d.logoOrders = mergeLogo(logoList, d.logoOrders)
	d.mu.Unlock()
	return nil
}

// Start opens the insert subscriptions on both collections.
func (d *Dashboard) Start() {
	d.cvSub = d.cv.SubscribeInserts(d.onCVInsert)
	d.logoSub = d.logo.SubscribeInserts(d.onLogoInsert)
}

// Stop releases both subscriptions. Safe to call once after Start.
func (d *Dashboard) Stop() {
	if d.cvSub != nil {
		d.cvSub.Unsubscribe()
		d.cvSub = nil
	}
	if d.logoSub != nil {
		d.logoSub.Unsubscribe()
		d.logoSub = nil
	}
}

func (d *Dashboard) onCVInsert(o models.CVOrder) {
	d.mu.Lock()
	d.cvOrders = upsertCV(d.cvOrders, o)
	d.mu.Unlock()
	d.broadcast(Event{Kind: "cv_order", CVOrder: &o})
}

func (d *Dashboard) onLogoInsert(o models.LogoOrder) {
	d.mu.Lock()
	d.logoOrders = upsertLogo(d.logoOrders, o)
	d.mu.Unlock()
	d.broadcast(Event{Kind: "logo_order", LogoOrder: &o})
}

// SetLive records a connectivity transition of the push channel and forwards
// it to stream subscribers.
func (d *Dashboard) SetLive(live bool) {
	status := LiveDegraded
	if live {
		status = LiveConnected
	}
	d.mu.Lock()
	changed := d.liveStatus != status
	d.liveStatus = status
	d.mu.Unlock()
	if changed {
		d.broadcast(Event{Kind: "live_status", LiveStatus: status})
	}
}

func (d *Dashboard) CVOrders() []models.CVOrder {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]models.CVOrder, len(d.cvOrders))
	copy(out, d.cvOrders)
	return out
}

func (d *Dashboard) LogoOrders() []models.LogoOrder {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]models.LogoOrder, len(d.logoOrders))
	copy(out, d.logoOrders)
	return out
}

// Stats derives the dashboard figures from current state on every call.
func (d *Dashboard) Stats() models.DashboardStats {
	d.mu.RLock()
	defer d.mu.RUnlock()

	stats := models.DashboardStats{LiveStatus: d.liveStatus}
	for _, o := range d.cvOrders {
		stats.TotalOrders++
		stats.Revenue += o.TotalPrice
		countStatus(&stats, o.Status)
	}
	for _, o := range d.logoOrders {
		stats.TotalOrders++
		stats.Revenue += o.TotalPrice
		countStatus(&stats, o.Status)
	}
	return stats
}

func countStatus(stats *models.DashboardStats, status string) {
	if orders.Pending(status) {
		stats.Pending++
	}
	if status == orders.StatusCompleted {
		stats.Completed++
	}
}

func (d *Dashboard) SetCVStatus(ctx context.Context, id uuid.UUID, status string) (*models.CVOrder, error) {
	updated, err := d.cv.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	d.mu.Lock()
	d.cvOrders = upsertCV(d.cvOrders, *updated)
	d.mu.Unlock()
	return updated, nil
}

func (d *Dashboard) SetLogoStatus(ctx context.Context, id uuid.UUID, status string) (*models.LogoOrder, error) {
	updated, err := d.logo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	d.mu.Lock()
	d.logoOrders = upsertLogo(d.logoOrders, *updated)
	d.mu.Unlock()
	return updated, nil
}

func (d *Dashboard) RemoveCV(ctx context.Context, id uuid.UUID) error {
	if err := d.cv.Delete(ctx, id); err != nil {
		return err
	}
	d.mu.Lock()
	d.cvOrders = removeCV(d.cvOrders, id)
	d.mu.Unlock()
	return nil
}

func (d *Dashboard) RemoveLogo(ctx context.Context, id uuid.UUID) error {
	if err := d.logo.Delete(ctx, id); err != nil {
		return err
	}
	d.mu.Lock()
	d.logoOrders = removeLogo(d.logoOrders, id)
	d.mu.Unlock()
	return nil
}

// FindCV looks up one order in local state by its storage id.
func (d *Dashboard) FindCV(id uuid.UUID) (*models.CVOrder, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for i := range d.cvOrders {
		if d.cvOrders[i].ID == id {
			o := d.cvOrders[i]
			return &o, true
		}
	}
	return nil, false
}

func (d *Dashboard) FindLogo(id uuid.UUID) (*models.LogoOrder, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for i := range d.logoOrders {
		if d.logoOrders[i].ID == id {
			o := d.logoOrders[i]
			return &o, true
		}
	}
	return nil, false
}

// SubscribeEvents returns a stream channel and its release function. Slow
// consumers lose events rather than blocking the push path.
func (d *Dashboard) SubscribeEvents() (<-chan Event, func()) {
	d.subsMu.Lock()
	defer d.subsMu.Unlock()
	id := d.nextSub
	d.nextSub++
	ch := make(chan Event, 16)
	d.subs[id] = ch
	return ch, func() {
		d.subsMu.Lock()
		defer d.subsMu.Unlock()
		delete(d.subs, id)
	}
}

func (d *Dashboard) broadcast(ev Event) {
	d.subsMu.Lock()
	defer d.subsMu.Unlock()
	for _, ch := range d.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// upsertCV replaces in place by id, or prepends a new row (push notifications
// arrive newest-first by construction).
func upsertCV(list []models.CVOrder, o models.CVOrder) []models.CVOrder {
	for i := range list {
		if list[i].ID == o.ID {
			list[i] = o
			return list
		}
	}
	return append([]models.CVOrder{o}, list...)
}

func upsertLogo(list []models.LogoOrder, o models.LogoOrder) []models.LogoOrder {
	for i := range list {
		if list[i].ID == o.ID {
			list[i] = o
			return list
		}
	}
	return append([]models.LogoOrder{o}, list...)
}

func removeCV(list []models.CVOrder, id uuid.UUID) []models.CVOrder {
	for i := range list {
		if list[i].ID == id {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

func removeLogo(list []models.LogoOrder, id uuid.UUID) []models.LogoOrder {
	for i := range list {
		if list[i].ID == id {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// mergeCV keeps fetched ordering (newest first) and re-prepends rows that
// only exist locally, i.e. pushes that raced the fetch.
func mergeCV(fetched, existing []models.CVOrder) []models.CVOrder {
	seen := make(map[uuid.UUID]bool, len(fetched))
	for _, o := range fetched {
		seen[o.ID] = true
	}
	merged := fetched
	for i := len(existing) - 1; i >= 0; i-- {
		if !seen[existing[i].ID] {
			merged = append([]models.CVOrder{existing[i]}, merged...)
		}
	}
	return merged
}

func mergeLogo(fetched, existing []models.LogoOrder) []models.LogoOrder {
	seen := make(map[uuid.UUID]bool, len(fetched))
	for _, o := range fetched {
		seen[o.ID] = true
	}
	merged := fetched
	for i := len(existing) - 1; i >= 0; i-- {
		if !seen[existing[i].ID] {
			merged = append([]models.LogoOrder{existing[i]}, merged...)
		}
	}
	return merged
}
