package terminal

import (
	"fmt"
	"time"

	"pizzapos/internal/core/domain/model/cart"
	"pizzapos/internal/core/domain/model/catalog"
	"pizzapos/internal/core/domain/model/kernel"
	"pizzapos/internal/core/domain/model/pizza"
	"pizzapos/internal/pkg/errs"
	"pizzapos/internal/pkg/guard"
)

const maxRecentProducts = 10

var (
	ErrTerminalIsNotConstructed = errs.NewValueIsRequiredError("terminal")
	ErrPricerIsRequired         = errs.NewValueIsRequiredError("pricer")
	ErrProductIsRequired        = errs.NewValueIsRequiredError("product")
)

// Pricer computes the final per-unit price of a cart line from the price the
// product had when the line was added. A nil customization prices as the
// bare base.
type Pricer interface {
	PriceFromBase(basePrice float64, customization *pizza.Customization) float64
}

// TemplateLine is one resolved entry of an order template: the catalog
// product plus the customization the template pins for it.
type TemplateLine struct {
	Product       *catalog.Product
	Customization *pizza.Customization
}

type undoSnapshot struct {
	tabID string
	items []cart.Item
}

// Terminal is the register-side aggregate: open tabs, the customization
// sessions in flight, parked orders, recently sold products, settings and a
// single-level undo snapshot. Cart line prices are derived state; every
// mutation that can change them goes through reprice, so a stored price is
// never stale.
type Terminal struct {
	id            kernel.UUID
	pricer        Pricer
	tabs          []*cart.Tab
	activeTab     int
	tabSeq        int
	sessions      []cart.Session
	activeSession int
	held          []cart.HeldOrder
	recents       []string
	undo          *undoSnapshot
	settings      Settings

	guard guard.ConstructorGuard
}

func NewTerminal(pricer Pricer) (*Terminal, error) {
	if pricer == nil {
		return nil, ErrPricerIsRequired
	}
	t := &Terminal{
		id:            kernel.NewUUID(),
		pricer:        pricer,
		activeSession: -1,
		settings:      defaultSettings(),
		guard:         guard.NewConstructorGuard(),
	}
	t.tabSeq = 1
	t.tabs = []*cart.Tab{cart.NewTab("Order 1")}
	return t, nil
}

func (t *Terminal) Validate() error {
	return t.guard.Validate(ErrTerminalIsNotConstructed)
}

func (t *Terminal) ID() kernel.UUID {
	return t.id
}

func (t *Terminal) Settings() Settings {
	return t.settings
}

// reprice is the single place a cart line price is computed.
func (t *Terminal) reprice(item *cart.Item) {
	item.Price = t.pricer.PriceFromBase(item.BasePrice, item.Customization)
}

// Cart operations. All of them act on the active tab.

// AddToCart appends one line for the product. Customizable products without
// an explicit customization get the panel defaults, so two plain additions of
// the same pizza price identically.
func (t *Terminal) AddToCart(
	product *catalog.Product,
	customization *pizza.Customization,
	defaults pizza.Defaults,
) (cart.Item, error) {
	if product == nil {
		return cart.Item{}, ErrProductIsRequired
	}
	t.snapshotUndo()
	item := t.appendProduct(product, customization, defaults)
	t.dropSessionForProduct(product.ID())
	return item, nil
}

// dropSessionForProduct closes the first open new-item session for the
// product, best effort: committing a panel add should not leave its session
// behind.
func (t *Terminal) dropSessionForProduct(productID string) {
	for _, session := range t.sessions {
		if session.ProductID == productID && !session.Editing {
			t.dropSession(session.TempID)
			return
		}
	}
}

// ApplyTemplate appends every line of a resolved template as one undoable
// action.
func (t *Terminal) ApplyTemplate(lines []TemplateLine, defaults pizza.Defaults) error {
	for _, line := range lines {
		if line.Product == nil {
			return ErrProductIsRequired
		}
	}
	if len(lines) == 0 {
		return nil
	}
	t.snapshotUndo()
	for _, line := range lines {
		t.appendProduct(line.Product, line.Customization.Clone(), defaults)
	}
	return nil
}

func (t *Terminal) appendProduct(
	product *catalog.Product,
	customization *pizza.Customization,
	defaults pizza.Defaults,
) cart.Item {
	if product.Customizable() && customization == nil {
		customization = pizza.NewDefaultCustomization(defaults, product.BaseIngredients())
	}
	item := cart.Item{
		CartID:        kernel.NewUUID().String(),
		ProductID:     product.ID(),
		Name:          product.Name(),
		BasePrice:     product.Price(),
		Quantity:      1,
		Customization: customization,
		Category:      product.Category(),
		Image:         product.Image(),
	}
	t.reprice(&item)
	t.activeTabRef().Append(item)
	t.pushRecent(product.ID())
	return item
}

// UpdateCartItem replaces the line's customization and reprices it from the
// base price frozen at add time. Unknown cart IDs are ignored.
func (t *Terminal) UpdateCartItem(cartID string, customization *pizza.Customization) (cart.Item, bool) {
	tab := t.activeTabRef()
	item, ok := tab.Item(cartID)
	if !ok {
		return cart.Item{}, false
	}
	t.snapshotUndo()
	item.Customization = customization
	t.reprice(&item)
	tab.Replace(item)
	t.dropSession(cartID)
	return item, true
}

// UpdateQuantity sets the line quantity; zero or negative removes the line.
func (t *Terminal) UpdateQuantity(cartID string, quantity int) bool {
	tab := t.activeTabRef()
	item, ok := tab.Item(cartID)
	if !ok {
		return false
	}
	t.snapshotUndo()
	if quantity <= 0 {
		tab.Remove(cartID)
		return true
	}
	item.Quantity = quantity
	tab.Replace(item)
	return true
}

func (t *Terminal) RemoveFromCart(cartID string) bool {
	tab := t.activeTabRef()
	if _, ok := tab.Item(cartID); !ok {
		return false
	}
	t.snapshotUndo()
	tab.Remove(cartID)
	t.dropSession(cartID)
	return true
}

// DuplicateItem copies a line under a fresh cart ID with quantity one. The
// customization is deep-copied so editing the duplicate never touches the
// original.
func (t *Terminal) DuplicateItem(cartID string) (cart.Item, bool) {
	tab := t.activeTabRef()
	item, ok := tab.Item(cartID)
	if !ok {
		return cart.Item{}, false
	}
	t.snapshotUndo()
	duplicate := item.Clone()
	duplicate.CartID = kernel.NewUUID().String()
	duplicate.Quantity = 1
	t.reprice(&duplicate)
	tab.Append(duplicate)
	return duplicate, true
}

func (t *Terminal) ClearCart() {
	t.snapshotUndo()
	t.activeTabRef().Clear()
}

// UndoLastAction restores the cart snapshot taken before the most recent
// cart mutation. The snapshot is single-level and consumed on restore; a
// second undo in a row does nothing. If the snapshotted tab has since been
// closed the snapshot is discarded without effect.
func (t *Terminal) UndoLastAction() bool {
	if t.undo == nil {
		return false
	}
	snapshot := t.undo
	t.undo = nil
	for _, tab := range t.tabs {
		if tab.ID() == snapshot.tabID {
			tab.Restore(snapshot.items)
			return true
		}
	}
	return false
}

func (t *Terminal) snapshotUndo() {
	tab := t.activeTabRef()
	t.undo = &undoSnapshot{tabID: tab.ID(), items: tab.Items()}
}

// CanUndo reports whether an undo snapshot is available.
func (t *Terminal) CanUndo() bool {
	return t.undo != nil
}

// Tabs.

func (t *Terminal) Tabs() []*cart.Tab {
	tabs := make([]*cart.Tab, len(t.tabs))
	copy(tabs, t.tabs)
	return tabs
}

func (t *Terminal) ActiveTabIndex() int {
	return t.activeTab
}

func (t *Terminal) ActiveTab() *cart.Tab {
	return t.activeTabRef()
}

func (t *Terminal) activeTabRef() *cart.Tab {
	return t.tabs[t.activeTab]
}

// AddTab opens a fresh tab and makes it active. Tab names keep counting up
// for the lifetime of the terminal, so closed tabs never cause reused names.
func (t *Terminal) AddTab() *cart.Tab {
	t.tabSeq++
	tab := cart.NewTab(fmt.Sprintf("Order %d", t.tabSeq))
	t.tabs = append(t.tabs, tab)
	t.activeTab = len(t.tabs) - 1
	return tab
}

// CloseTab removes the tab at the index and activates the one before it,
// clamped to the first tab. At least one tab always stays open: closing the
// sole tab clears it instead. Out-of-range indexes are ignored.
func (t *Terminal) CloseTab(index int) {
	if index < 0 || index >= len(t.tabs) {
		return
	}
	if len(t.tabs) == 1 {
		t.tabs[0].Clear()
		return
	}
	t.tabs = append(t.tabs[:index], t.tabs[index+1:]...)
	t.activeTab = index - 1
	if t.activeTab < 0 {
		t.activeTab = 0
	}
}

func (t *Terminal) SetActiveTab(index int) {
	if index < 0 || index >= len(t.tabs) {
		return
	}
	t.activeTab = index
}

// Held orders.

// HoldOrder parks the active cart under a reason label and clears the tab.
// The held entry keeps the tab's id. An empty cart is a no-op.
func (t *Terminal) HoldOrder(reason string, heldAt time.Time) (cart.HeldOrder, bool) {
	tab := t.activeTabRef()
	if tab.IsEmpty() {
		return cart.HeldOrder{}, false
	}
	held := cart.HeldOrder{
		ID:     tab.ID(),
		Reason: reason,
		Items:  tab.Items(),
		HeldAt: heldAt,
	}
	t.held = append(t.held, held)
	tab.Clear()
	return held, true
}

// ResumeOrder loads a held order back into the register. An empty active tab
// is reused; otherwise the order resumes into a new tab named after its
// reason. Unknown IDs are ignored.
func (t *Terminal) ResumeOrder(heldID string) bool {
	for i, held := range t.held {
		if held.ID != heldID {
			continue
		}
		tab := t.activeTabRef()
		if !tab.IsEmpty() {
			t.tabSeq++
			tab = cart.NewTab(held.Reason)
			t.tabs = append(t.tabs, tab)
			t.activeTab = len(t.tabs) - 1
		}
		tab.Restore(held.Items)
		t.held = append(t.held[:i], t.held[i+1:]...)
		return true
	}
	return false
}

func (t *Terminal) HeldOrders() []cart.HeldOrder {
	held := make([]cart.HeldOrder, len(t.held))
	for i, h := range t.held {
		held[i] = h
		held[i].Items = cart.CloneItems(h.Items)
	}
	return held
}

// Customization sessions.

// StartCustomizing opens a new-item panel session for the product and makes
// it active. Several sessions can be open at once.
func (t *Terminal) StartCustomizing(productID string) cart.Session {
	session := cart.Session{
		TempID:    kernel.NewUUID().String(),
		ProductID: productID,
	}
	t.sessions = append(t.sessions, session)
	t.activeSession = len(t.sessions) - 1
	return session
}

// StartEditing opens an edit session seeded with the line's current
// customization. The session reuses the cart ID, so a second edit of the same
// line re-activates the open session instead of stacking another one.
func (t *Terminal) StartEditing(cartID string) (cart.Session, bool) {
	for i, session := range t.sessions {
		if session.TempID == cartID {
			t.activeSession = i
			return t.sessionCopy(i), true
		}
	}
	item, ok := t.activeTabRef().Item(cartID)
	if !ok {
		return cart.Session{}, false
	}
	session := cart.Session{
		TempID:    cartID,
		ProductID: item.ProductID,
		Seed:      item.Customization.Clone(),
		Editing:   true,
	}
	t.sessions = append(t.sessions, session)
	t.activeSession = len(t.sessions) - 1
	return t.sessionCopy(t.activeSession), true
}

// CancelCustomizing discards the session with the given temp ID.
func (t *Terminal) CancelCustomizing(tempID string) bool {
	return t.dropSession(tempID)
}

func (t *Terminal) dropSession(tempID string) bool {
	for i, session := range t.sessions {
		if session.TempID != tempID {
			continue
		}
		t.sessions = append(t.sessions[:i], t.sessions[i+1:]...)
		if t.activeSession >= len(t.sessions) {
			t.activeSession = len(t.sessions) - 1
		}
		return true
	}
	return false
}

func (t *Terminal) Sessions() []cart.Session {
	sessions := make([]cart.Session, len(t.sessions))
	for i := range t.sessions {
		sessions[i] = t.sessionCopy(i)
	}
	return sessions
}

func (t *Terminal) ActiveSession() (cart.Session, bool) {
	if t.activeSession < 0 || t.activeSession >= len(t.sessions) {
		return cart.Session{}, false
	}
	return t.sessionCopy(t.activeSession), true
}

func (t *Terminal) sessionCopy(i int) cart.Session {
	session := t.sessions[i]
	session.Seed = session.Seed.Clone()
	return session
}

// Recents.

func (t *Terminal) RecentProductIDs() []string {
	recents := make([]string, len(t.recents))
	copy(recents, t.recents)
	return recents
}

func (t *Terminal) pushRecent(productID string) {
	recents := make([]string, 0, len(t.recents)+1)
	recents = append(recents, productID)
	for _, id := range t.recents {
		if id != productID {
			recents = append(recents, id)
		}
	}
	if len(recents) > maxRecentProducts {
		recents = recents[:maxRecentProducts]
	}
	t.recents = recents
}

// Checkout support.

func (t *Terminal) ActiveItems() []cart.Item {
	return t.activeTabRef().Items()
}

// CompleteCheckout empties the active tab after a paid transaction. The undo
// snapshot is dropped so a paid cart cannot be resurrected.
func (t *Terminal) CompleteCheckout() {
	t.activeTabRef().Clear()
	t.undo = nil
}

// Settings.

func (t *Terminal) SetUserRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	t.settings.UserRole = role
	return nil
}

func (t *Terminal) SetRushMode(enabled bool) {
	t.settings.RushMode = enabled
}

func (t *Terminal) SetShowReadinessView(enabled bool) {
	t.settings.ShowReadinessView = enabled
}

func (t *Terminal) SetSearchQuery(query string) {
	t.settings.SearchQuery = query
}

func (t *Terminal) SetSelectedCategory(category string) {
	t.settings.SelectedCategory = category
}
