package handler

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/offmarket/listing-api/internal/core/domain"
	"github.com/offmarket/listing-api/internal/core/ports"
	"github.com/offmarket/listing-api/internal/core/query"
)

// --- Query params → Service input ---

// toListInput parses the catalogue search parameters. Unknown or malformed
// values fall back to "no constraint" rather than failing the request, the
// same forgiving behaviour as a search form.
func toListInput(c echo.Context) ports.ListPropertiesInput {
	criteria := query.Criteria{
		Query:       c.QueryParam("q"),
		Type:        domain.PropertyType(c.QueryParam("type")),
		ListingType: domain.ListingType(c.QueryParam("listing_type")),
		Status:      domain.PropertyStatus(c.QueryParam("status")),
		PriceMin:    parseInt64(c.QueryParam("price_min")),
		PriceMax:    parseInt64(c.QueryParam("price_max")),
		SurfaceMin:  parseFloat(c.QueryParam("surface_min")),
		SurfaceMax:  parseFloat(c.QueryParam("surface_max")),
		Features:    splitCSV(c.QueryParam("features")),
	}
	criteria.Rooms, criteria.RoomsOrMore = parseRooms(c.QueryParam("rooms"))

	return ports.ListPropertiesInput{
		Criteria: criteria,
		SortKey:  query.SortKey(c.QueryParam("sort")),
		SortDir:  query.Direction(c.QueryParam("dir")),
		Page:     int(parseInt64(c.QueryParam("page"))),
		PageSize: int(parseInt64(c.QueryParam("page_size"))),
	}
}

// parseRooms understands both exact counts ("4.5") and the open-ended
// bucket ("10+" meaning ten or more rooms).
func parseRooms(s string) (rooms float64, orMore bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if strings.HasSuffix(s, "+") {
		orMore = true
		s = strings.TrimSuffix(s, "+")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, orMore
}

func parseInt64(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// --- Request → Domain ---

func toDomainProperty(req createPropertyRequest) domain.Property {
	status := domain.PropertyStatus(req.Status)
	if status == "" {
		status = domain.StatusAvailable
	}
	p := domain.Property{
		Title:        req.Title,
		Description:  req.Description,
		City:         req.City,
		Neighborhood: req.Neighborhood,
		Address:      req.Address,
		Type:         domain.PropertyType(req.Type),
		Rooms:        req.Rooms,
		Surface:      req.Surface,
		Status:       status,
		ListingType:  domain.ListingType(req.ListingType),
		Price: domain.Price{
			Amount:   req.Price.Amount,
			Currency: req.Price.Currency,
			Display:  req.Price.Display,
		},
		Images:   req.Images,
		VideoURL: req.VideoURL,
		Features: req.Features,
	}
	if req.Contact != nil {
		p.Contact = &domain.ContactInfo{
			Name:  req.Contact.Name,
			Phone: req.Contact.Phone,
			Email: req.Contact.Email,
		}
	}
	return p
}

// --- Domain → HTTP response ---

func toPropertyResponse(p domain.Property) propertyResponse {
	resp := propertyResponse{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		City:         p.City,
		Neighborhood: p.Neighborhood,
		Address:      p.Address,
		Type:         string(p.Type),
		Rooms:        p.Rooms,
		Surface:      p.Surface,
		Status:       string(p.Status),
		ListingType:  string(p.ListingType),
		Price: priceResponse{
			Amount:   p.Price.Amount,
			Currency: p.Price.Currency,
			Display:  p.Price.Display,
		},
		Images:    p.Images,
		VideoURL:  p.VideoURL,
		Features:  p.Features,
		Views:     p.Views,
		Inquiries: p.Inquiries,
		CreatedAt: p.CreatedAt.UTC(),
		UpdatedAt: p.UpdatedAt.UTC(),
	}
	if p.Contact != nil {
		resp.Contact = &contactResponse{
			Name:  p.Contact.Name,
			Phone: p.Contact.Phone,
			Email: p.Contact.Email,
		}
	}
	return resp
}

func toListResponse(r *ports.ListPropertiesResult) listPropertiesResponse {
	items := make([]propertyResponse, len(r.Items))
	for i, p := range r.Items {
		items[i] = toPropertyResponse(p)
	}
	return listPropertiesResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      r.Total,
			Page:       r.Page,
			PageSize:   r.PageSize,
			TotalPages: r.TotalPages,
		},
	}
}
