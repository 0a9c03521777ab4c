package ui

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"cortado/internal/db"
	"cortado/internal/model"
	"cortado/internal/search"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type gState int

const (
	gStateIdle gState = iota
	gStateFirstG
)

// Model is the root Bubble Tea model.
type Model struct {
	db        *sql.DB
	searchSvc search.Service
	screen    model.Screen
	mode      model.Mode
	gState    gState

	width  int
	height int

	error       string
	info        string
	showingHelp bool

	confirm    DeleteConfirm
	formOrigin model.Screen

	// Screen models
	ratings        *RatingsModel
	favorites      *RatingsModel
	wishlist       *WishlistModel
	stats          *StatsModel
	ratingDetail   *RatingDetailModel
	wishlistDetail *WishlistDetailModel
	ratingForm     *RatingFormModel
	wishlistForm   *WishlistFormModel
}

// New creates a new root model.
func New(database *sql.DB, searchSvc search.Service) Model {
	return Model{
		db:        database,
		searchSvc: searchSvc,
		screen:    model.ScreenRatings,
		mode:      model.ModeNav,
		gState:    gStateIdle,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(loadRatingsCmd(m.db), loadWishlistCmd(m.db))
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Handle ctrl+c globally
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// A pending delete confirmation swallows every key.
		if m.confirm.Pending() && m.mode == model.ModeNav {
			return m.handleConfirmKey(msg)
		}

		if msg.String() == "?" && m.mode == model.ModeNav && !m.listCapturing() {
			m.showingHelp = !m.showingHelp
			return m, nil
		}

		if m.showingHelp {
			if msg.String() == "esc" || msg.String() == "?" {
				m.showingHelp = false
			}
			return m, nil
		}

		if m.mode == model.ModeNav {
			return m.handleNavMode(msg)
		}
		return m.handleInsertMode(msg)

	case model.ErrorMsg:
		m.error = msg.Err.Error()
		return m, nil

	case model.RatingsLoadedMsg:
		if m.ratings == nil {
			m.ratings = NewRatingsModel(msg.Ratings, false)
		} else {
			m.ratings.SetRatings(msg.Ratings)
		}
		if m.favorites == nil {
			m.favorites = NewRatingsModel(msg.Ratings, true)
		} else {
			m.favorites.SetRatings(msg.Ratings)
		}
		if m.stats == nil {
			m.stats = NewStatsModel(msg.Ratings)
		} else {
			m.stats.SetRatings(msg.Ratings)
		}
		m.error = ""
		return m, nil

	case model.WishlistLoadedMsg:
		if m.wishlist == nil {
			m.wishlist = NewWishlistModel(msg.Items)
		} else {
			m.wishlist.SetItems(msg.Items)
		}
		m.error = ""
		return m, nil

	case model.RatingDetailLoadedMsg:
		m.ratingDetail = NewRatingDetailModel(msg.Rating)
		m.screen = model.ScreenRatingDetail
		m.error = ""
		return m, nil

	case model.WishlistDetailLoadedMsg:
		m.wishlistDetail = NewWishlistDetailModel(msg.Item)
		m.screen = model.ScreenWishlistDetail
		m.error = ""
		return m, nil

	case model.RatingSavedMsg:
		m.mode = model.ModeNav
		m.screen = model.ScreenRatings
		m.ratingForm = nil
		if msg.PromotedFrom != "" {
			m.info = fmt.Sprintf("%s promoted to a rating", msg.Rating.Name)
			return m, tea.Batch(loadRatingsCmd(m.db), loadWishlistCmd(m.db))
		}
		m.info = "Rating saved"
		return m, loadRatingsCmd(m.db)

	case model.WishlistSavedMsg:
		m.mode = model.ModeNav
		m.screen = model.ScreenWishlist
		m.wishlistForm = nil
		m.info = "Added to your want-to-go list"
		return m, loadWishlistCmd(m.db)

	case model.RatingDeletedMsg:
		if m.screen == model.ScreenRatingDetail {
			m.screen = model.ScreenRatings
			m.ratingDetail = nil
		}
		m.info = "Rating deleted"
		return m, loadRatingsCmd(m.db)

	case model.WishlistDeletedMsg:
		if m.screen == model.ScreenWishlistDetail {
			m.screen = model.ScreenWishlist
			m.wishlistDetail = nil
		}
		m.info = "Removed from your list"
		return m, loadWishlistCmd(m.db)

	case model.FavoriteToggledMsg:
		if m.ratingDetail != nil {
			m.ratingDetail.SetFavorited(msg.IsFavorited)
		}
		if msg.IsFavorited {
			m.info = "Added to favorites"
		} else {
			m.info = "Removed from favorites"
		}
		return m, loadRatingsCmd(m.db)

	case model.VisitedToggledMsg:
		if m.wishlistDetail != nil {
			m.wishlistDetail.SetVisited(msg.HasVisited)
		}
		if msg.HasVisited {
			m.info = "Marked as visited"
		} else {
			m.info = "Marked as not visited"
		}
		return m, loadWishlistCmd(m.db)

	case model.CommentsSavedMsg:
		if m.wishlistDetail != nil {
			m.wishlistDetail.SetComments(msg.Comments)
		}
		m.info = "Notes saved"
		return m, loadWishlistCmd(m.db)

	case model.FormCancelledMsg:
		m.mode = model.ModeNav
		m.ratingForm = nil
		m.wishlistForm = nil
		m.screen = m.formOrigin
		return m, nil

	default:
		// Pass all other messages to forms
		if m.mode == model.ModeInsert {
			return m.handleInsertMode(msg)
		}
	}

	return m, nil
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.showingHelp {
		return RenderFullHelp(m.width, m.height)
	}

	var content string
	var breadcrumbParts []string

	showTabs := m.screen == model.ScreenRatings ||
		m.screen == model.ScreenFavorites ||
		m.screen == model.ScreenWishlist ||
		m.screen == model.ScreenStats

	contentHeight := m.height - 4
	if showTabs {
		contentHeight -= 2
	}
	if banner := m.bannerLine(); banner != "" {
		contentHeight--
	}

	switch m.screen {
	case model.ScreenRatings:
		breadcrumbParts = []string{"Ratings"}
		if m.ratings != nil {
			content = m.ratings.View(m.width, contentHeight)
		}
	case model.ScreenFavorites:
		breadcrumbParts = []string{"Favorites"}
		if m.favorites != nil {
			content = m.favorites.View(m.width, contentHeight)
		}
	case model.ScreenWishlist:
		breadcrumbParts = []string{"Want to Go"}
		if m.wishlist != nil {
			content = m.wishlist.View(m.width, contentHeight)
		}
	case model.ScreenStats:
		breadcrumbParts = []string{"Stats"}
		if m.stats != nil {
			content = m.stats.View(m.width, contentHeight)
		}
	case model.ScreenRatingDetail:
		breadcrumbParts = []string{"Ratings", "Detail"}
		if m.ratingDetail != nil {
			breadcrumbParts = []string{"Ratings", m.ratingDetail.rating.Name}
			content = m.ratingDetail.View(m.width, contentHeight)
		}
	case model.ScreenWishlistDetail:
		breadcrumbParts = []string{"Want to Go", "Detail"}
		if m.wishlistDetail != nil {
			breadcrumbParts = []string{"Want to Go", m.wishlistDetail.item.Name}
			content = m.wishlistDetail.View(m.width, contentHeight)
		}
	case model.ScreenRatingForm:
		breadcrumbParts = []string{"Ratings", "New"}
		if m.ratingForm != nil {
			if m.ratingForm.promotedFrom != "" {
				breadcrumbParts = []string{"Want to Go", "Promote"}
			}
			content = m.ratingForm.View(m.width, contentHeight)
		}
	case model.ScreenWishlistForm:
		breadcrumbParts = []string{"Want to Go", "New"}
		if m.wishlistForm != nil {
			content = m.wishlistForm.View(m.width, contentHeight)
		}
	}

	header := renderHeader(breadcrumbParts, m.width)
	footer := RenderHelp(m.screen, m.mode, m.width)

	contentStyle := lipgloss.NewStyle().
		Width(m.width).
		Height(contentHeight)
	content = contentStyle.Render(content)

	parts := []string{header}
	if showTabs {
		parts = append(parts, renderTabs(m.screen, m.width))
	}
	if banner := m.bannerLine(); banner != "" {
		parts = append(parts, banner)
	}
	parts = append(parts, content, footer)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// bannerLine is the one-line notice above the content: a pending
// delete confirmation wins over errors, errors win over info.
func (m Model) bannerLine() string {
	if m.confirm.Pending() {
		return WarnStyle.Width(m.width).Render(
			fmt.Sprintf("Delete %q? This cannot be undone.  y confirm / n cancel", m.confirm.Name()))
	}
	if m.error != "" {
		return ErrorStyle.Width(m.width).Render("Error: " + m.error)
	}
	if m.info != "" {
		return SuccessStyle.Width(m.width).Render(m.info)
	}
	return ""
}

func renderTabs(screen model.Screen, width int) string {
	tabs := []struct {
		name   string
		screen model.Screen
	}{
		{"Ratings", model.ScreenRatings},
		{"Favorites", model.ScreenFavorites},
		{"Want to Go", model.ScreenWishlist},
		{"Stats", model.ScreenStats},
	}

	var tabStrings []string
	for _, tab := range tabs {
		tabStyle := lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(ColorMuted)

		if screen == tab.screen {
			tabStyle = tabStyle.
				Foreground(ColorText).
				Bold(true).
				Underline(true)
		}

		tabStrings = append(tabStrings, tabStyle.Render(tab.name))
	}

	tabBar := lipgloss.JoinHorizontal(lipgloss.Left, tabStrings...)
	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		BorderBottom(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		Render(tabBar)
}

func renderHeader(breadcrumbParts []string, width int) string {
	title := HeaderStyle.Render("cortado")

	var breadcrumb string
	if len(breadcrumbParts) > 0 {
		separator := BreadcrumbStyle.Render(" › ")
		parts := make([]string, len(breadcrumbParts))
		for i, part := range breadcrumbParts {
			if i == len(breadcrumbParts)-1 {
				parts[i] = BreadcrumbActiveStyle.Render(part)
			} else {
				parts[i] = BreadcrumbStyle.Render(part)
			}
		}
		breadcrumb = separator + strings.Join(parts, separator)
	}

	left := "  " + title + breadcrumb

	now := time.Now()
	dateStr := now.Format("Mon 02 Jan")
	right := BreadcrumbStyle.Render(dateStr) + "  "

	leftLen := lipgloss.Width(left)
	rightLen := lipgloss.Width(right)
	padding := max(0, width-leftLen-rightLen)

	headerContent := left + strings.Repeat(" ", padding) + right
	return TitleStyle.Width(width).Render(headerContent)
}

// handleConfirmKey resolves a pending delete confirmation.
func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		kind, id, ok := m.confirm.Confirm()
		if !ok {
			return m, nil
		}
		switch kind {
		case TargetRating:
			return m, deleteRatingCmd(m.db, id)
		case TargetWishlist:
			return m, deleteWishlistCmd(m.db, id)
		}
		return m, nil
	case "n", "N", "esc":
		m.confirm.Cancel()
		m.info = "Delete cancelled"
		return m, nil
	}
	// Anything else leaves the question on screen.
	return m, nil
}

// listCapturing reports whether the current list's filter input or
// notes editor owns the keyboard.
func (m Model) listCapturing() bool {
	switch m.screen {
	case model.ScreenRatings:
		return m.ratings != nil && m.ratings.Filtering()
	case model.ScreenFavorites:
		return m.favorites != nil && m.favorites.Filtering()
	case model.ScreenWishlist:
		return m.wishlist != nil && m.wishlist.Filtering()
	case model.ScreenWishlistDetail:
		return m.wishlistDetail != nil && m.wishlistDetail.EditingNotes()
	}
	return false
}

// handleNavMode handles navigation mode input.
func (m Model) handleNavMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Filter inputs and the notes editor get the raw keys first.
	switch m.screen {
	case model.ScreenRatings:
		if m.ratings != nil && m.ratings.Filtering() {
			return m, m.ratings.UpdateFilter(msg)
		}
	case model.ScreenFavorites:
		if m.favorites != nil && m.favorites.Filtering() {
			return m, m.favorites.UpdateFilter(msg)
		}
	case model.ScreenWishlist:
		if m.wishlist != nil && m.wishlist.Filtering() {
			return m, m.wishlist.UpdateFilter(msg)
		}
	case model.ScreenWishlistDetail:
		if m.wishlistDetail != nil && m.wishlistDetail.EditingNotes() {
			comments, done, cmd := m.wishlistDetail.UpdateNotes(msg)
			if done {
				return m, saveCommentsCmd(m.db, m.wishlistDetail.Item().ID, comments)
			}
			return m, cmd
		}
	}

	// "gg" jumps to the top.
	if msg.String() == "g" {
		if m.gState == gStateIdle {
			m.gState = gStateFirstG
			return m, nil
		}
		m.gState = gStateIdle
		return m.handleJumpToTop()
	}
	if m.gState == gStateFirstG {
		m.gState = gStateIdle
	}

	switch m.screen {
	case model.ScreenRatings:
		return m.handleRatingsNav(msg, m.ratings, model.ScreenRatings)
	case model.ScreenFavorites:
		return m.handleRatingsNav(msg, m.favorites, model.ScreenFavorites)
	case model.ScreenWishlist:
		return m.handleWishlistNav(msg)
	case model.ScreenStats:
		return m.handleStatsNav(msg)
	case model.ScreenRatingDetail:
		return m.handleRatingDetailNav(msg)
	case model.ScreenWishlistDetail:
		return m.handleWishlistDetailNav(msg)
	}

	return m, nil
}

// handleInsertMode handles insert mode input.
func (m Model) handleInsertMode(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case model.ScreenRatingForm:
		if m.ratingForm != nil {
			newForm, cmd := m.ratingForm.Update(msg)
			m.ratingForm = &newForm
			return m, cmd
		}
	case model.ScreenWishlistForm:
		if m.wishlistForm != nil {
			newForm, cmd := m.wishlistForm.Update(msg)
			m.wishlistForm = &newForm
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) handleJumpToTop() (tea.Model, tea.Cmd) {
	switch m.screen {
	case model.ScreenRatings:
		if m.ratings != nil {
			m.ratings.JumpToTop()
		}
	case model.ScreenFavorites:
		if m.favorites != nil {
			m.favorites.JumpToTop()
		}
	case model.ScreenWishlist:
		if m.wishlist != nil {
			m.wishlist.JumpToTop()
		}
	}
	return m, nil
}

// cycleTab moves between the four top-level views.
func (m Model) cycleTab(delta int) (tea.Model, tea.Cmd) {
	order := []model.Screen{
		model.ScreenRatings,
		model.ScreenFavorites,
		model.ScreenWishlist,
		model.ScreenStats,
	}
	current := 0
	for i, s := range order {
		if s == m.screen {
			current = i
			break
		}
	}
	m.screen = order[(current+delta+len(order))%len(order)]
	m.info = ""
	return m, nil
}

func (m Model) handleRatingsNav(msg tea.KeyMsg, list *RatingsModel, screen model.Screen) (tea.Model, tea.Cmd) {
	if list == nil {
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "tab", "right":
		return m.cycleTab(1)
	case "shift+tab", "left":
		return m.cycleTab(-1)
	case "a":
		m.mode = model.ModeInsert
		m.formOrigin = screen
		m.screen = model.ScreenRatingForm
		m.ratingForm = NewRatingFormModel(m.db, m.searchSvc)
		m.info = ""
		return m, nil
	case "/":
		list.StartFilter()
		return m, nil
	case "f":
		if r := list.Selected(); r != nil {
			return m, toggleFavoriteCmd(m.db, r.ID, !r.IsFavorited)
		}
		return m, nil
	case "d":
		if r := list.Selected(); r != nil {
			m.confirm.Request(TargetRating, r.ID, r.Name)
			m.info = ""
		}
		return m, nil
	case "enter", "l":
		if r := list.Selected(); r != nil {
			return m, loadRatingDetailCmd(m.db, r.ID)
		}
		return m, nil
	case "j", "down":
		list.CursorDown()
		return m, nil
	case "k", "up":
		list.CursorUp()
		return m, nil
	case "G":
		list.JumpToBottom()
		return m, nil
	case "ctrl+d":
		for i := 0; i < m.height/4; i++ {
			list.CursorDown()
		}
		return m, nil
	case "ctrl+u":
		for i := 0; i < m.height/4; i++ {
			list.CursorUp()
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleWishlistNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.wishlist == nil {
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "tab", "right":
		return m.cycleTab(1)
	case "shift+tab", "left":
		return m.cycleTab(-1)
	case "a":
		m.mode = model.ModeInsert
		m.formOrigin = model.ScreenWishlist
		m.screen = model.ScreenWishlistForm
		m.wishlistForm = NewWishlistFormModel(m.db, m.searchSvc)
		m.info = ""
		return m, nil
	case "/":
		m.wishlist.StartFilter()
		return m, nil
	case "x":
		if it := m.wishlist.Selected(); it != nil {
			return m, toggleVisitedCmd(m.db, it.ID, !it.HasVisited)
		}
		return m, nil
	case "p":
		if it := m.wishlist.Selected(); it != nil {
			return m.startPromotion(*it)
		}
		return m, nil
	case "d":
		if it := m.wishlist.Selected(); it != nil {
			m.confirm.Request(TargetWishlist, it.ID, it.Name)
			m.info = ""
		}
		return m, nil
	case "enter", "l":
		if it := m.wishlist.Selected(); it != nil {
			return m, loadWishlistDetailCmd(m.db, it.ID)
		}
		return m, nil
	case "j", "down":
		m.wishlist.CursorDown()
		return m, nil
	case "k", "up":
		m.wishlist.CursorUp()
		return m, nil
	case "G":
		m.wishlist.JumpToBottom()
		return m, nil
	case "ctrl+d":
		for i := 0; i < m.height/4; i++ {
			m.wishlist.CursorDown()
		}
		return m, nil
	case "ctrl+u":
		for i := 0; i < m.height/4; i++ {
			m.wishlist.CursorUp()
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleStatsNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "tab", "right":
		return m.cycleTab(1)
	case "shift+tab", "left":
		return m.cycleTab(-1)
	}
	return m, nil
}

func (m Model) handleRatingDetailNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.ratingDetail == nil {
		return m, nil
	}

	switch msg.String() {
	case "h", "esc", "b":
		m.screen = model.ScreenRatings
		m.ratingDetail = nil
		return m, nil
	case "f":
		r := m.ratingDetail.rating
		return m, toggleFavoriteCmd(m.db, r.ID, !r.IsFavorited)
	case "d":
		r := m.ratingDetail.rating
		m.confirm.Request(TargetRating, r.ID, r.Name)
		m.info = ""
		return m, nil
	}
	return m, nil
}

func (m Model) handleWishlistDetailNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.wishlistDetail == nil {
		return m, nil
	}

	switch msg.String() {
	case "h", "esc", "b":
		m.screen = model.ScreenWishlist
		m.wishlistDetail = nil
		return m, nil
	case "x":
		it := m.wishlistDetail.Item()
		return m, toggleVisitedCmd(m.db, it.ID, !it.HasVisited)
	case "p":
		return m.startPromotion(m.wishlistDetail.Item())
	case "e":
		m.wishlistDetail.StartEditNotes()
		return m, nil
	case "d":
		it := m.wishlistDetail.Item()
		m.confirm.Request(TargetWishlist, it.ID, it.Name)
		m.info = ""
		return m, nil
	}
	return m, nil
}

// startPromotion opens the rating form pre-filled from a wishlist
// item. Only visited places can be promoted.
func (m Model) startPromotion(item model.WishlistItem) (tea.Model, tea.Cmd) {
	if !item.HasVisited {
		m.info = "Mark it visited first (x), then promote."
		return m, nil
	}
	m.mode = model.ModeInsert
	m.formOrigin = m.screen
	m.screen = model.ScreenRatingForm
	m.ratingForm = NewPromotionFormModel(m.db, m.searchSvc, item)
	m.wishlistDetail = nil
	m.info = ""
	return m, nil
}

// Commands

func loadRatingsCmd(database *sql.DB) tea.Cmd {
	return func() tea.Msg {
		ratings, err := db.ListRatings(database)
		if err != nil {
			return model.ErrorMsg{Err: err}
		}
		return model.RatingsLoadedMsg{Ratings: ratings}
	}
}

func loadWishlistCmd(database *sql.DB) tea.Cmd {
	return func() tea.Msg {
		items, err := db.ListWishlist(database)
		if err != nil {
			return model.ErrorMsg{Err: err}
		}
		return model.WishlistLoadedMsg{Items: items}
	}
}

func loadRatingDetailCmd(database *sql.DB, id string) tea.Cmd {
	return func() tea.Msg {
		rating, err := db.GetRating(database, id)
		if err != nil {
			return model.ErrorMsg{Err: fmt.Errorf("failed to load rating: %w", err)}
		}
		return model.RatingDetailLoadedMsg{Rating: rating}
	}
}

func loadWishlistDetailCmd(database *sql.DB, id string) tea.Cmd {
	return func() tea.Msg {
		item, err := db.GetWishlistItem(database, id)
		if err != nil {
			return model.ErrorMsg{Err: fmt.Errorf("failed to load wishlist item: %w", err)}
		}
		return model.WishlistDetailLoadedMsg{Item: item}
	}
}

func deleteRatingCmd(database *sql.DB, id string) tea.Cmd {
	return func() tea.Msg {
		if err := db.DeleteRating(database, id); err != nil {
			return model.ErrorMsg{Err: fmt.Errorf("failed to delete rating: %w", err)}
		}
		return model.RatingDeletedMsg{ID: id}
	}
}

func deleteWishlistCmd(database *sql.DB, id string) tea.Cmd {
	return func() tea.Msg {
		if err := db.DeleteWishlistItem(database, id); err != nil {
			return model.ErrorMsg{Err: fmt.Errorf("failed to delete wishlist item: %w", err)}
		}
		return model.WishlistDeletedMsg{ID: id}
	}
}

func toggleFavoriteCmd(database *sql.DB, id string, favorited bool) tea.Cmd {
	return func() tea.Msg {
		if err := db.SetFavorited(database, id, favorited); err != nil {
			return model.ErrorMsg{Err: fmt.Errorf("failed to update favorite: %w", err)}
		}
		return model.FavoriteToggledMsg{ID: id, IsFavorited: favorited}
	}
}

func toggleVisitedCmd(database *sql.DB, id string, visited bool) tea.Cmd {
	return func() tea.Msg {
		if err := db.SetVisited(database, id, visited); err != nil {
			return model.ErrorMsg{Err: fmt.Errorf("failed to update visited: %w", err)}
		}
		return model.VisitedToggledMsg{ID: id, HasVisited: visited}
	}
}

func saveCommentsCmd(database *sql.DB, id, comments string) tea.Cmd {
	return func() tea.Msg {
		if err := db.UpdateWishlistComments(database, id, comments); err != nil {
			return model.ErrorMsg{Err: fmt.Errorf("failed to save notes: %w", err)}
		}
		return model.CommentsSavedMsg{ID: id, Comments: comments}
	}
}
