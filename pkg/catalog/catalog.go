// Package catalog holds the fixed library of callable tool schemas annotators
// pick from. The library is defined once at init and never changes while the
// process runs; records store their own snapshots of the schemas they use.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/qazaqnlp/qural/pkg/models"
)

var library = buildLibrary()

func buildLibrary() map[string]models.ToolSchema {
	tools := []models.ToolSchema{
		// Weather
		{
			Name:        "weather.get",
			Description: "Get current weather conditions for a city",
			Parameters: models.Params{
				{Name: "city", Type: "string", Description: "City name", Required: true},
				{Name: "units", Type: "string", Description: "metric or imperial"},
			},
		},
		{
			Name:        "weather.forecast",
			Description: "Get weather forecast for upcoming days",
			Parameters: models.Params{
				{Name: "city", Type: "string", Description: "City name", Required: true},
				{Name: "days", Type: "int", Description: "Number of days (1-7)"},
			},
		},
		{
			Name:        "air.quality",
			Description: "Get air quality index and pollution levels",
			Parameters: models.Params{
				{Name: "city", Type: "string", Description: "City name", Required: true},
			},
		},
		// Maps
		{
			Name:        "maps.geocode",
			Description: "Convert address to latitude/longitude coordinates",
			Parameters: models.Params{
				{Name: "address", Type: "string", Description: "Full address or location name", Required: true},
			},
		},
		{
			Name:        "maps.route",
			Description: "Calculate driving/walking route between locations",
			Parameters: models.Params{
				{Name: "from", Type: "string", Description: "Starting location", Required: true},
				{Name: "to", Type: "string", Description: "Destination", Required: true},
				{Name: "mode", Type: "string", Description: "driving, walking, transit"},
			},
		},
		// Travel
		{
			Name:        "flights.search",
			Description: "Search available flights between airports",
			Parameters: models.Params{
				{Name: "from", Type: "string", Description: "Departure airport code", Required: true},
				{Name: "to", Type: "string", Description: "Arrival airport code", Required: true},
				{Name: "date", Type: "string", Description: "Departure date YYYY-MM-DD", Required: true},
				{Name: "sort", Type: "string", Description: "price, duration, departure_time"},
			},
		},
		{
			Name:        "flights.book",
			Description: "Book a specific flight",
			Parameters: models.Params{
				{Name: "flightId", Type: "string", Description: "Flight ID from search", Required: true},
				{Name: "passengerName", Type: "string", Description: "Passenger full name", Required: true},
				{Name: "phone", Type: "string", Description: "Contact phone"},
			},
		},
		{
			Name:        "hotels.search",
			Description: "Search hotels in a city",
			Parameters: models.Params{
				{Name: "city", Type: "string", Description: "City name", Required: true},
				{Name: "checkin", Type: "string", Description: "Check-in date YYYY-MM-DD", Required: true},
				{Name: "nights", Type: "int", Description: "Number of nights"},
			},
		},
		{
			Name:        "hotels.book",
			Description: "Book a hotel room",
			Parameters: models.Params{
				{Name: "hotelId", Type: "string", Description: "Hotel ID from search", Required: true},
				{Name: "checkin", Type: "string", Description: "Check-in date YYYY-MM-DD", Required: true},
				{Name: "nights", Type: "int", Description: "Number of nights", Required: true},
				{Name: "guestName", Type: "string", Description: "Guest name", Required: true},
			},
		},
		{
			Name:        "trains.search",
			Description: "Search train schedules",
			Parameters: models.Params{
				{Name: "from", Type: "string", Description: "Departure station", Required: true},
				{Name: "to", Type: "string", Description: "Arrival station", Required: true},
				{Name: "date", Type: "string", Description: "Travel date YYYY-MM-DD", Required: true},
			},
		},
		// Calendar
		{
			Name:        "calendar.get",
			Description: "Get calendar events for a specific date",
			Parameters: models.Params{
				{Name: "date", Type: "string", Description: "Date YYYY-MM-DD", Required: true},
				{Name: "timezone", Type: "string", Description: "Timezone like Asia/Almaty"},
			},
		},
		{
			Name:        "calendar.add",
			Description: "Add new calendar event",
			Parameters: models.Params{
				{Name: "title", Type: "string", Description: "Event title", Required: true},
				{Name: "datetime", Type: "string", Description: "Start time RFC3339", Required: true},
				{Name: "duration", Type: "int", Description: "Duration in minutes"},
				{Name: "location", Type: "string", Description: "Event location"},
			},
		},
		// Communication
		{
			Name:        "email.send",
			Description: "Send email message",
			Parameters: models.Params{
				{Name: "to", Type: "string", Description: "Recipient email", Required: true},
				{Name: "subject", Type: "string", Description: "Email subject", Required: true},
				{Name: "body", Type: "string", Description: "Email content", Required: true},
			},
		},
		{
			Name:        "sms.send",
			Description: "Send SMS message",
			Parameters: models.Params{
				{Name: "to", Type: "string", Description: "Phone number", Required: true},
				{Name: "message", Type: "string", Description: "SMS text", Required: true},
			},
		},
		// Search
		{
			Name:        "web.search",
			Description: "Search the web for information",
			Parameters: models.Params{
				{Name: "query", Type: "string", Description: "Search query", Required: true},
				{Name: "limit", Type: "int", Description: "Number of results"},
			},
		},
		{
			Name:        "news.search",
			Description: "Search recent news articles",
			Parameters: models.Params{
				{Name: "query", Type: "string", Description: "Search topic", Required: true},
				{Name: "language", Type: "string", Description: "Language code"},
				{Name: "pageToken", Type: "string", Description: "Pagination token"},
			},
		},
		{
			Name:        "wiki.search",
			Description: "Search Wikipedia articles",
			Parameters: models.Params{
				{Name: "query", Type: "string", Description: "Search term", Required: true},
				{Name: "language", Type: "string", Description: "Language code like kk, ru, en"},
			},
		},
		// Finance
		{
			Name:        "forex.rate",
			Description: "Get currency exchange rate",
			Parameters: models.Params{
				{Name: "from", Type: "string", Description: "Source currency code", Required: true},
				{Name: "to", Type: "string", Description: "Target currency code", Required: true},
			},
		},
		{
			Name:        "bank.balance",
			Description: "Get bank account balance",
			Parameters: models.Params{
				{Name: "account", Type: "string", Description: "Account number", Required: true},
				{Name: "api_key", Type: "string", Description: "Auth key"},
			},
		},
		{
			Name:        "bank.transfer",
			Description: "Transfer money between accounts",
			Parameters: models.Params{
				{Name: "from_account", Type: "string", Description: "Source account", Required: true},
				{Name: "to_account", Type: "string", Description: "Destination account", Required: true},
				{Name: "amount", Type: "float", Description: "Amount to transfer", Required: true},
				{Name: "api_key", Type: "string", Description: "Auth key", Required: true},
			},
		},
		{
			Name:        "crypto.price",
			Description: "Get cryptocurrency price",
			Parameters: models.Params{
				{Name: "symbol", Type: "string", Description: "Crypto symbol like BTC, ETH", Required: true},
				{Name: "currency", Type: "string", Description: "Target currency like USD, KZT"},
			},
		},
		// Shopping
		{
			Name:        "shop.search",
			Description: "Search products in online store",
			Parameters: models.Params{
				{Name: "query", Type: "string", Description: "Product search query", Required: true},
				{Name: "category", Type: "string", Description: "Product category"},
				{Name: "sort", Type: "string", Description: "price_low, price_high, rating"},
			},
		},
		{
			Name:        "shop.add_to_cart",
			Description: "Add product to shopping cart",
			Parameters: models.Params{
				{Name: "productId", Type: "string", Description: "Product ID", Required: true},
				{Name: "quantity", Type: "int", Description: "Number of items"},
			},
		},
		{
			Name:        "shop.checkout",
			Description: "Complete purchase",
			Parameters: models.Params{
				{Name: "cartId", Type: "string", Description: "Shopping cart ID", Required: true},
				{Name: "paymentMethod", Type: "string", Description: "card, cash, bank_transfer", Required: true},
			},
		},
		// Documentation
		{
			Name:        "docs.retrieve",
			Description: "Get API documentation for a service",
			Parameters: models.Params{
				{Name: "service", Type: "string", Description: "Service name", Required: true},
				{Name: "function", Type: "string", Description: "Function name", Required: true},
			},
		},
		// Text analysis
		{
			Name:        "nlp.sentiment",
			Description: "Analyze sentiment of text",
			Parameters: models.Params{
				{Name: "text", Type: "string", Description: "Text to analyze", Required: true},
				{Name: "language", Type: "string", Description: "Language code"},
			},
		},
		{
			Name:        "nlp.translate",
			Description: "Translate text between languages",
			Parameters: models.Params{
				{Name: "text", Type: "string", Description: "Text to translate", Required: true},
				{Name: "from_lang", Type: "string", Description: "Source language", Required: true},
				{Name: "to_lang", Type: "string", Description: "Target language", Required: true},
			},
		},
		// Network and system
		{
			Name:        "network.speedtest",
			Description: "Test internet connection speed",
			Parameters: models.Params{
				{Name: "server", Type: "string", Description: "Test server location"},
			},
		},
		{
			Name:        "system.time",
			Description: "Get current time in timezone",
			Parameters: models.Params{
				{Name: "timezone", Type: "string", Description: "Timezone like Asia/Almaty", Required: true},
			},
		},
		// Media
		{
			Name:        "images.search",
			Description: "Search for images",
			Parameters: models.Params{
				{Name: "query", Type: "string", Description: "Image search query", Required: true},
				{Name: "limit", Type: "int", Description: "Number of results"},
			},
		},
		{
			Name:        "video.search",
			Description: "Search for videos",
			Parameters: models.Params{
				{Name: "query", Type: "string", Description: "Video search query", Required: true},
				{Name: "platform", Type: "string", Description: "youtube, vimeo, all"},
			},
		},
		// Events and dining
		{
			Name:        "events.search",
			Description: "Search for events in a city",
			Parameters: models.Params{
				{Name: "city", Type: "string", Description: "City name", Required: true},
				{Name: "type", Type: "string", Description: "concert, sports, theater, etc"},
				{Name: "date", Type: "string", Description: "Event date YYYY-MM-DD"},
			},
		},
		{
			Name:        "tickets.book",
			Description: "Book event tickets",
			Parameters: models.Params{
				{Name: "eventId", Type: "string", Description: "Event ID from search", Required: true},
				{Name: "quantity", Type: "int", Description: "Number of tickets", Required: true},
				{Name: "seatType", Type: "string", Description: "vip, regular, balcony"},
			},
		},
		{
			Name:        "restaurant.search",
			Description: "Search restaurants",
			Parameters: models.Params{
				{Name: "city", Type: "string", Description: "City name", Required: true},
				{Name: "cuisine", Type: "string", Description: "Cuisine type"},
				{Name: "priceRange", Type: "string", Description: "budget, mid, expensive"},
			},
		},
		{
			Name:        "restaurant.reserve",
			Description: "Make restaurant reservation",
			Parameters: models.Params{
				{Name: "restaurantId", Type: "string", Description: "Restaurant ID", Required: true},
				{Name: "date", Type: "string", Description: "Reservation date YYYY-MM-DD", Required: true},
				{Name: "time", Type: "string", Description: "Time HH:MM", Required: true},
				{Name: "guests", Type: "int", Description: "Number of guests", Required: true},
			},
		},
	}

	lib := make(map[string]models.ToolSchema, len(tools))
	for _, t := range tools {
		lib[t.Name] = t
	}
	return lib
}

// Catalog returns the full library keyed by tool name.
func Catalog() map[string]models.ToolSchema {
	return library
}

// Get returns the schema for name.
func Get(name string) (models.ToolSchema, bool) {
	t, ok := library[name]
	return t, ok
}

// Names returns every tool name, sorted.
func Names() []string {
	names := make([]string, 0, len(library))
	for name := range library {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TemplateFor renders the argument template for a tool: a pretty JSON object
// with one entry per declared parameter, the value a <type> placeholder plus a
// marker when the parameter is required. Annotators overwrite the placeholders
// with real values.
func TemplateFor(name string) (string, error) {
	tool, ok := library[name]
	if !ok {
		return "", fmt.Errorf("unknown tool %q", name)
	}

	var b strings.Builder
	b.WriteString("{\n")
	for i, param := range tool.Parameters {
		placeholder := "<" + param.Type + ">"
		if param.Required {
			placeholder += " (required)"
		}
		key, err := models.EncodeJSON(param.Name, "")
		if err != nil {
			return "", err
		}
		val, err := models.EncodeJSON(placeholder, "")
		if err != nil {
			return "", err
		}
		b.WriteString("    " + key + ": " + val)
		if i < len(tool.Parameters)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String(), nil
}
