package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/taipei-trip/trip-cli/internal/api"
	"github.com/taipei-trip/trip-cli/internal/config"
	"github.com/taipei-trip/trip-cli/internal/feed"
	"github.com/taipei-trip/trip-cli/internal/models"
	"github.com/taipei-trip/trip-cli/internal/output"
	"github.com/taipei-trip/trip-cli/internal/session"
	"github.com/taipei-trip/trip-cli/internal/tui"
)

var version = "0.3.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "trip",
	Short: "CLI for browsing and booking Taipei day-trip attractions",
	Long: `trip is a command-line interface for the Taipei day-trip attraction
service: browse and search attractions, mark favorites, book half-day
tours, and check out orders.

Features:
  - Infinite-scroll attraction browsing in a full-screen TUI
  - Keyword and MRT-station search
  - Favorites synced to your account
  - Half-day tour booking and checkout
  - JSON output for scripting
  - Response caching for faster repeated queries

Quick Start:
  1. Launch TUI:              trip (or trip tui)
  2. List attractions:        trip attractions --keyword 公園
  3. Show one attraction:     trip attraction 12
  4. Sign in:                 trip login you@example.com <password>
  5. Book a tour:             trip booking set 12 2026-09-15 morning
  6. Check out:               trip checkout --prime <prime> -n Name -e a@b.c -p 0912345678`,
	Version: version,
	RunE: func(cmd *cobra.Command, args []string) error {
		// If no subcommand is provided, launch TUI
		if len(args) == 0 {
			return runTUI(cmd, args)
		}
		return cmd.Help()
	},
}

// Global flags
var (
	flagJSON    bool
	flagRawJSON bool
	flagColor   string
	flagNoCache bool
	flagBaseURL string
)

// Listing flags
var (
	flagPage    int
	flagKeyword string
	flagPages   int
	flagAll     bool
	flagAddress bool
)

// Checkout/order flags
var (
	flagPrime        string
	flagContactName  string
	flagContactEmail string
	flagContactPhone string
	flagWatch        bool
)

func init() {
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(attractionsCmd)
	rootCmd.AddCommand(attractionCmd)
	rootCmd.AddCommand(mrtsCmd)
	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(favoritesCmd)
	rootCmd.AddCommand(bookingCmd)
	rootCmd.AddCommand(checkoutCmd)
	rootCmd.AddCommand(orderCmd)
	rootCmd.AddCommand(memberCmd)

	// Global flags
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagRawJSON, "raw-json", false, "Output raw API response")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto", "Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "Disable response caching")
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "Override the API base URL")

	// Listing flags
	attractionsCmd.Flags().IntVar(&flagPage, "page", 0, "Page to start from")
	attractionsCmd.Flags().StringVarP(&flagKeyword, "keyword", "k", "", "Filter by keyword or MRT station name")
	attractionsCmd.Flags().IntVar(&flagPages, "pages", 1, "Number of consecutive pages to fetch")
	attractionsCmd.Flags().BoolVar(&flagAll, "all", false, "Fetch every page until the listing is exhausted")
	attractionsCmd.Flags().BoolVarP(&flagAddress, "address", "a", false, "Show addresses")

	// Checkout flags
	checkoutCmd.Flags().StringVar(&flagPrime, "prime", "", "Payment prime token from the card tokenizer")
	checkoutCmd.Flags().StringVarP(&flagContactName, "name", "n", "", "Contact name")
	checkoutCmd.Flags().StringVarP(&flagContactEmail, "email", "e", "", "Contact email")
	checkoutCmd.Flags().StringVarP(&flagContactPhone, "phone", "p", "", "Contact phone")

	// Order flags
	orderCmd.Flags().BoolVarP(&flagWatch, "watch", "w", false, "Watch mode: refresh until the order is paid")
}

// openStore opens the on-disk session store.
func openStore() (*session.Store, error) {
	return session.NewStore(session.DefaultDir())
}

// createClient creates an API client from config, flags, and the stored
// session token.
func createClient(store *session.Store) (*api.Client, error) {
	cfg := config.Load()

	opts := []api.ClientOption{api.WithTimeout(cfg.Timeout)}
	if cfg.BaseURL != "" {
		opts = append(opts, api.WithBaseURL(cfg.BaseURL))
	}
	if flagBaseURL != "" {
		opts = append(opts, api.WithBaseURL(flagBaseURL))
	}

	// Enable caching unless disabled
	if !flagNoCache && !cfg.NoCache {
		opts = append(opts, api.WithDefaultCache())
	}

	if store != nil {
		if token := store.Token(); token != "" {
			opts = append(opts, api.WithToken(token))
		}
	}

	return api.NewClient(opts...)
}

// getColorMode returns the color mode based on flag
func getColorMode() output.ColorMode {
	return output.ParseColorMode(flagColor)
}

func tableOpts(favorites models.FavoriteSet) output.TableOptions {
	return output.TableOptions{
		Colors:      output.NewColors(getColorMode()),
		ShowAddress: flagAddress,
		Favorites:   favorites,
	}
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive full-screen TUI",
	Long: `Launch an interactive full-screen terminal UI for browsing
attractions, favorites, bookings, and your member page.

Keyboard:
  j/k or arrows  Scroll the card list (more pages load automatically)
  Enter          Open attraction detail
  /              Jump to keyword search (empty search resets to browsing)
  Tab            Jump to the MRT station bar
  f              Toggle favorite
  b              Book the open attraction
  m              Member page
  q              Quit`,
	RunE: runTUI,
}

var attractionsCmd = &cobra.Command{
	Use:   "attractions",
	Short: "List attractions page by page",
	Long: `List attractions, optionally filtered by a keyword. The keyword
matches attraction names as a substring and MRT station names exactly,
the same way the search box in the TUI does.

Examples:
  trip attractions                       # First page of everything
  trip attractions --pages 3             # First three pages
  trip attractions --all                 # Every page until exhausted
  trip attractions -k 公園               # Keyword search
  trip attractions -k 忠孝復興 --pages 2 # All attractions at one station
  trip attractions --page 4              # Start from page 4`,
	Args: cobra.NoArgs,
	RunE: runAttractions,
}

var attractionCmd = &cobra.Command{
	Use:   "attraction <id>",
	Short: "Show one attraction",
	Args:  cobra.ExactArgs(1),
	RunE:  runAttraction,
}

var mrtsCmd = &cobra.Command{
	Use:   "mrts",
	Short: "List MRT stations ordered by attraction count",
	Args:  cobra.NoArgs,
	RunE:  runMRTs,
}

var signupCmd = &cobra.Command{
	Use:   "signup <name> <email> <password>",
	Short: "Create an account",
	Args:  cobra.ExactArgs(3),
	RunE:  runSignup,
}

var loginCmd = &cobra.Command{
	Use:   "login <email> <password>",
	Short: "Sign in and store the session token",
	Long: `Sign in and store the session token for later commands.

If a booking was set while signed out, it is submitted right after the
token arrives.`,
	Args: cobra.ExactArgs(2),
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored session token",
	Args:  cobra.NoArgs,
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	Args:  cobra.NoArgs,
	RunE:  runWhoami,
}

var favoritesCmd = &cobra.Command{
	Use:   "favorites [add|remove <id>]",
	Short: "List or edit favorites",
	Long: `List your favorite attractions, or add/remove one by ID.

Examples:
  trip favorites
  trip favorites add 12
  trip favorites remove 12`,
	Args: cobra.MaximumNArgs(2),
	RunE: runFavorites,
}

var bookingCmd = &cobra.Command{
	Use:   "booking [set <id> <date> <time> | rm]",
	Short: "Show, set, or remove the pending booking",
	Long: `Show, set, or remove the single pending booking.

The date is YYYY-MM-DD and the time is "morning" (TWD 2000) or
"afternoon" (TWD 2500). Setting a booking replaces any existing one.
While signed out, the booking is parked locally and submitted on the
next login.

Examples:
  trip booking
  trip booking set 12 2026-09-15 morning
  trip booking rm`,
	Args: cobra.MaximumNArgs(4),
	RunE: runBooking,
}

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Pay for the pending booking",
	Long: `Create an order from the pending booking and pay it with a prime
token from the card tokenizer. The card number itself never passes
through this program.

Example:
  trip checkout --prime <prime> -n "Test User" -e user@example.com -p 0912345678`,
	Args: cobra.NoArgs,
	RunE: runCheckout,
}

var orderCmd = &cobra.Command{
	Use:   "order <number>",
	Short: "Show an order",
	Long: `Show an order by its number.

Watch Mode:
  --watch, -w   Refresh every few seconds until the order is paid

Examples:
  trip order 20260901123456
  trip order 20260901123456 --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runOrder,
}

var memberCmd = &cobra.Command{
	Use:   "member",
	Short: "Show the member dashboard with order history",
	Args:  cobra.NoArgs,
	RunE:  runMember,
}

func runTUI(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return fmt.Errorf("failed to open session store: %w", err)
	}
	client, err := createClient(store)
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	model := tui.New(client, store)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func runAttractions(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	client, err := createClient(nil)
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	// Raw JSON output: single page only
	if flagRawJSON {
		raw, err := client.ListAttractionsRaw(ctx, api.PageRequest{Page: flagPage, Keyword: flagKeyword})
		if err != nil {
			return err
		}
		return printPrettyJSON(raw)
	}

	// The same cursor state machine that drives the TUI walks the pages
	// here: it follows the server's nextPage and stops on an empty page.
	// The controller counts from the start of the listing, so --page is an
	// offset applied at the request boundary.
	ctrl := feed.NewController()
	plan := ctrl.SetMode(flagKeyword)
	start := flagPage

	pages := flagPages
	if pages < 1 {
		pages = 1
	}

	for i := 0; flagAll || i < pages; i++ {
		page, err := client.ListAttractions(ctx, api.PageRequest{Page: plan.Page + start, Keyword: plan.Keyword})
		res := feed.Result{Epoch: plan.Epoch, Err: err}
		if err == nil {
			res.Attractions = page.Attractions
			if page.NextPage != nil {
				rel := *page.NextPage - start
				res.NextPage = &rel
			}
		}
		if ctrl.Apply(res) == feed.OutcomeError {
			return ctrl.Err()
		}
		if ctrl.Exhausted() {
			break
		}
		var ok bool
		plan, ok = ctrl.TriggerFetch()
		if !ok {
			break
		}
	}

	attractions := ctrl.Records()

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(attractions)
	}

	// Favorites markers only render when signed in
	store, _ := openStore()
	favorites := models.FavoriteSet{}
	if store != nil && store.Token() != "" {
		authed, err := createClient(store)
		if err == nil {
			favorites = authed.FavoriteSnapshot(ctx)
		}
	}

	output.RenderAttractions(os.Stdout, attractions, tableOpts(favorites))
	if !ctrl.Exhausted() {
		_, _ = fmt.Fprintf(os.Stdout, "\nMore pages available: --page %d\n", ctrl.Cursor()+start)
	}
	return nil
}

func runAttraction(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid attraction ID %q", args[0])
	}

	client, err := createClient(nil)
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	if flagRawJSON {
		raw, err := client.GetAttractionRaw(ctx, id)
		if err != nil {
			return err
		}
		return printPrettyJSON(raw)
	}

	attraction, err := client.GetAttraction(ctx, id)
	if err != nil {
		return err
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(attraction)
	}

	output.RenderAttractionDetail(os.Stdout, attraction, tableOpts(nil))
	return nil
}

func runMRTs(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	client, err := createClient(nil)
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	if flagRawJSON {
		raw, err := client.GetMRTsRaw(ctx)
		if err != nil {
			return err
		}
		return printPrettyJSON(raw)
	}

	stations, err := client.GetMRTs(ctx)
	if err != nil {
		return err
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(stations)
	}

	output.RenderMRTs(os.Stdout, stations, tableOpts(nil))
	return nil
}

func runSignup(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	client, err := createClient(nil)
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	if err := client.Register(ctx, args[0], args[1], args[2]); err != nil {
		return err
	}

	fmt.Println("Account created. Sign in with: trip login", args[1], "<password>")
	return nil
}

func runLogin(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	store, err := openStore()
	if err != nil {
		return fmt.Errorf("failed to open session store: %w", err)
	}
	client, err := createClient(nil)
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	token, err := client.Login(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	if err := store.SetToken(token); err != nil {
		return fmt.Errorf("signed in, but storing the token failed: %w", err)
	}
	client.SetToken(token)
	fmt.Println("Signed in.")

	// Submit a booking parked while signed out
	if pending := store.PendingBooking(); pending != nil {
		if err := client.CreateBooking(ctx, *pending); err != nil {
			return fmt.Errorf("stored booking could not be submitted: %w", err)
		}
		_ = store.SetPendingBooking(nil)
		fmt.Printf("Parked booking submitted: attraction %d on %s (%s).\n",
			pending.AttractionID, pending.Date, pending.Time)
	}
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return fmt.Errorf("failed to open session store: %w", err)
	}
	if err := store.Clear(); err != nil {
		return err
	}
	fmt.Println("Signed out.")
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	client, store, err := authedClient()
	if err != nil {
		return err
	}

	user, err := client.GetUser(ctx)
	if err != nil {
		return err
	}
	if user == nil {
		// Token was rejected; drop it so the next command starts clean
		_ = store.Clear()
		return fmt.Errorf("session expired, sign in again")
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(user)
	}

	fmt.Printf("%s <%s>\n", user.Name, user.Email)
	return nil
}

func runFavorites(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	client, _, err := authedClient()
	if err != nil {
		return err
	}

	// Edit subforms: favorites add <id> / favorites remove <id>
	if len(args) == 2 {
		id, convErr := strconv.Atoi(args[1])
		if convErr != nil {
			return fmt.Errorf("invalid attraction ID %q", args[1])
		}
		switch args[0] {
		case "add":
			if err := client.AddFavorite(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Added attraction %d to favorites.\n", id)
			return nil
		case "remove", "rm":
			if err := client.RemoveFavorite(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Removed attraction %d from favorites.\n", id)
			return nil
		}
		return fmt.Errorf("unknown action %q, want add or remove", args[0])
	}
	if len(args) == 1 {
		return fmt.Errorf("usage: trip favorites [add|remove <id>]")
	}

	favorites := client.FavoriteSnapshot(ctx)
	ids := favorites.IDs()

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(ids)
	}

	if len(ids) == 0 {
		fmt.Println("No favorites yet.")
		return nil
	}

	// Resolve names for a readable list
	attractions := make([]models.Attraction, 0, len(ids))
	for _, id := range ids {
		a, err := client.GetAttraction(ctx, id)
		if err != nil {
			attractions = append(attractions, models.Attraction{ID: id, Name: fmt.Sprintf("(attraction %d)", id)})
			continue
		}
		attractions = append(attractions, *a)
	}
	output.RenderAttractions(os.Stdout, attractions, tableOpts(favorites))
	return nil
}

func runBooking(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	store, err := openStore()
	if err != nil {
		return fmt.Errorf("failed to open session store: %w", err)
	}
	client, err := createClient(store)
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	switch {
	case len(args) == 0:
		if !client.Authenticated() {
			if pending := store.PendingBooking(); pending != nil {
				fmt.Printf("Parked locally (submitted on login): attraction %d on %s (%s), TWD %d\n",
					pending.AttractionID, pending.Date, pending.Time, pending.Price)
				return nil
			}
			return api.ErrNoToken
		}
		booking, err := client.GetBooking(ctx)
		if err != nil {
			return err
		}
		if flagJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(booking)
		}
		output.RenderBooking(os.Stdout, booking, tableOpts(nil))
		return nil

	case args[0] == "rm":
		if !client.Authenticated() {
			if store.PendingBooking() != nil {
				_ = store.SetPendingBooking(nil)
				fmt.Println("Parked booking discarded.")
				return nil
			}
			return api.ErrNoToken
		}
		if err := client.DeleteBooking(ctx); err != nil {
			return err
		}
		fmt.Println("Booking removed.")
		return nil

	case args[0] == "set" && len(args) == 4:
		req, err := parseBookingArgs(args[1], args[2], args[3])
		if err != nil {
			return err
		}
		if !client.Authenticated() {
			// localStorage analog: park it and submit on the next login
			if err := store.SetPendingBooking(&req); err != nil {
				return err
			}
			fmt.Println("Not signed in; booking parked locally. It will be submitted on your next login.")
			return nil
		}
		if err := client.CreateBooking(ctx, req); err != nil {
			return err
		}
		fmt.Printf("Booked attraction %d on %s (%s), TWD %d.\n",
			req.AttractionID, req.Date, req.Time, req.Price)
		return nil
	}

	return fmt.Errorf("usage: trip booking [set <id> <date> <time> | rm]")
}

// parseBookingArgs validates booking set arguments and derives the price
// from the half-day slot.
func parseBookingArgs(idArg, dateArg, timeArg string) (models.BookingRequest, error) {
	id, err := strconv.Atoi(idArg)
	if err != nil {
		return models.BookingRequest{}, fmt.Errorf("invalid attraction ID %q", idArg)
	}

	day, err := time.Parse("2006-01-02", dateArg)
	if err != nil {
		return models.BookingRequest{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", dateArg)
	}

	var price int
	switch timeArg {
	case "morning":
		price = 2000
	case "afternoon":
		price = 2500
	default:
		return models.BookingRequest{}, fmt.Errorf("invalid time %q, want %s", timeArg, strings.Join(api.BookingTimes, " or "))
	}

	return models.BookingRequest{
		AttractionID: id,
		Date:         day.Format("2006-01-02"),
		Time:         timeArg,
		Price:        price,
	}, nil
}

func runCheckout(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	client, _, err := authedClient()
	if err != nil {
		return err
	}

	if flagPrime == "" {
		return fmt.Errorf("--prime is required; obtain it from the card tokenizer")
	}
	if flagContactName == "" || flagContactEmail == "" || flagContactPhone == "" {
		return fmt.Errorf("--name, --email, and --phone are required")
	}

	booking, err := client.GetBooking(ctx)
	if err != nil {
		return err
	}
	if booking == nil {
		return fmt.Errorf("no pending booking to check out; set one with: trip booking set <id> <date> <time>")
	}

	order, err := client.CreateOrder(ctx, models.OrderRequest{
		Prime: flagPrime,
		Order: models.OrderPayload{
			Price: booking.Price,
			Trip: models.Trip{
				Attraction: booking.Attraction,
				Date:       booking.Date,
				Time:       booking.Time,
			},
			Contact: models.Contact{
				Name:  flagContactName,
				Email: flagContactEmail,
				Phone: flagContactPhone,
			},
		},
	})
	if err != nil {
		return err
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(order)
	}

	output.RenderOrder(os.Stdout, order, tableOpts(nil))
	return nil
}

func runOrder(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	number := args[0]

	client, _, err := authedClient()
	if err != nil {
		return err
	}

	// Watch mode: poll until the payment settles
	if flagWatch {
		return runWatch(func() (bool, error) {
			order, err := client.GetOrder(ctx, number)
			if err != nil {
				return false, err
			}
			if order == nil {
				return false, fmt.Errorf("no order %s", number)
			}
			output.RenderOrder(os.Stdout, order, tableOpts(nil))
			return order.Paid(), nil
		})
	}

	order, err := client.GetOrder(ctx, number)
	if err != nil {
		return err
	}
	if order == nil {
		return fmt.Errorf("no order %s", number)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(order)
	}

	output.RenderOrder(os.Stdout, order, tableOpts(nil))
	return nil
}

func runMember(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	client, _, err := authedClient()
	if err != nil {
		return err
	}

	member, err := client.GetMember(ctx)
	if err != nil {
		return err
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(member)
	}

	output.RenderMember(os.Stdout, member, tableOpts(nil))
	return nil
}

// authedClient builds a client carrying the stored token, failing early
// when no one is signed in.
func authedClient() (*api.Client, *session.Store, error) {
	store, err := openStore()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open session store: %w", err)
	}
	if store.Token() == "" {
		return nil, nil, fmt.Errorf("not signed in; run: trip login <email> <password>")
	}
	client, err := createClient(store)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create API client: %w", err)
	}
	return client, store, nil
}

// runWatch runs a refresh loop until render reports done or the user
// interrupts.
func runWatch(render func() (bool, error)) error {
	const refreshInterval = 5 * time.Second

	sigChan := output.SetupSignalHandler()
	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	output.HideCursor(os.Stdout)
	defer output.ShowCursor(os.Stdout)

	for {
		output.ClearScreen(os.Stdout)

		now := time.Now()
		fmt.Printf("Last update: %s | Press Ctrl+C to exit\n\n", now.Format("15:04:05"))

		done, err := render()
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		if done {
			fmt.Println("\nPayment settled.")
			return nil
		}

		select {
		case <-ticker.C:
			continue
		case <-sigChan:
			output.ClearScreen(os.Stdout)
			fmt.Println("Watch mode ended.")
			return nil
		}
	}
}

func printPrettyJSON(data []byte) error {
	var prettyJSON interface{}
	if err := json.Unmarshal(data, &prettyJSON); err != nil {
		// If we can't parse it, just print raw
		fmt.Println(string(data))
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(prettyJSON)
}
