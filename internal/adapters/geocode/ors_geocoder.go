package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"driver-route-service/internal/domain"
	"driver-route-service/internal/platform/obs"
)

// GeocodeCache is the persistence boundary for resolved addresses. Both the
// Postgres and SQLite caches in internal/adapters/cache satisfy it.
type GeocodeCache interface {
	GetMany(ctx context.Context, addresses []string) (map[string]domain.Coordinates, error)
	PutMany(ctx context.Context, results map[string]domain.Coordinates) error
}

// ORSGeocoder resolves street addresses to coordinates using the
// OpenRouteService geocoding endpoint.
//
// It coordinates:
//   - Address normalization
//   - Persistent geocode caching
//   - External API calls with retry/backoff
//
// The geocoder is safe for concurrent use.
type ORSGeocoder struct {
	session *http.Client
	apiKey  string
	baseURL string
	country string
	cache   GeocodeCache
}

func NewORSGeocoder(apiKey, country string, cache GeocodeCache) (*ORSGeocoder, error) {
	if apiKey == "" {
		return nil, errors.New("ORS api key is empty")
	}

	return &ORSGeocoder{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://api.openrouteservice.org",
		country: country,
		cache:   cache,
	}, nil
}

// normalize ensures consistent cache keys by collapsing whitespace.
func (o *ORSGeocoder) normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// GeocodeMany resolves the given addresses, consulting the persistent cache
// before issuing external calls. Addresses the service cannot resolve are
// simply absent from the result; only transport-level failures are errors.
func (o *ORSGeocoder) GeocodeMany(
	ctx context.Context,
	addresses []string,
) (_ map[string]domain.Coordinates, err error) {
	defer obs.Time(ctx, "ors.GeocodeMany")(&err)

	seen := make(map[string]struct{}, len(addresses))
	uniq := make([]string, 0, len(addresses))
	for _, a := range addresses {
		na := o.normalize(a)
		if na == "" {
			continue
		}
		if _, ok := seen[na]; ok {
			continue
		}
		seen[na] = struct{}{}
		uniq = append(uniq, na)
	}

	if len(uniq) == 0 {
		return map[string]domain.Coordinates{}, nil
	}

	hits := make(map[string]domain.Coordinates)
	// Check the persistent cache before issuing external API calls.
	if o.cache != nil {
		hits, err = o.cache.GetMany(ctx, uniq)
		if err != nil {
			return nil, fmt.Errorf("geocode cache read: %w", err)
		}
	}

	misses := make([]string, 0, len(uniq))
	for _, a := range uniq {
		if _, ok := hits[a]; !ok {
			misses = append(misses, a)
		}
	}

	if len(misses) == 0 {
		return hits, nil
	}

	fresh := make(map[string]domain.Coordinates, len(misses))
	for _, a := range misses {
		coord, found, err := o.geocodeOne(ctx, a)
		if err != nil {
			return nil, fmt.Errorf("geocode %q: %w", a, err)
		}
		if found {
			fresh[a] = coord
		}
	}

	if o.cache != nil && len(fresh) > 0 {
		if err := o.cache.PutMany(ctx, fresh); err != nil {
			log.Printf("geocode cache write failed: %v", err)
		}
	}

	out := make(map[string]domain.Coordinates, len(hits)+len(fresh))
	for k, v := range hits {
		out[k] = v
	}
	for k, v := range fresh {
		out[k] = v
	}

	return out, nil
}

func (o *ORSGeocoder) geocodeOne(ctx context.Context, address string) (domain.Coordinates, bool, error) {
	endpoint := o.baseURL + "/geocode/search"

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := o.newRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("text", address)
		if o.country != "" {
			q.Set("boundary.country", o.country)
		}
		q.Set("size", "1")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("decode geocode response: %w", err)
	}

	if len(decoded.Features) == 0 {
		return domain.Coordinates{}, false, nil
	}

	coords := decoded.Features[0].Geometry.Coordinates
	if len(coords) != 2 {
		return domain.Coordinates{}, false, fmt.Errorf("invalid coordinate format for %q", address)
	}

	// ORS returns [lon, lat].
	return domain.Coordinates{Lat: coords[1], Lng: coords[0]}, true, nil
}
