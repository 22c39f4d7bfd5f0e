package handlers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/supercells/supercells-api/internal/infra/http/middleware"
	"github.com/supercells/supercells-api/internal/usecase"
)

// CompanyHandler fronts the hosted scraping service. The endpoint is
// unauthenticated (the onboarding form calls it before login), so it is
// rate limited per IP instead.
type CompanyHandler struct {
	Searcher    usecase.CompanySearcher
	rateLimiter *RateLimiter
}

func NewCompanyHandler(searcher usecase.CompanySearcher) *CompanyHandler {
	return &CompanyHandler{
		Searcher:    searcher,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min per IP
	}
}

type SearchCompanyRequest struct {
	CompanyName string `json:"company_name"`
}

func (h *CompanyHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		writeErrorResponse(w, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests. Please try again later.")
		return
	}

	var req SearchCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON body")
		return
	}

	if req.CompanyName == "" {
		writeErrorResponse(w, http.StatusBadRequest, "VALIDATION_ERROR", "company_name is required")
		return
	}

	info, err := h.Searcher.SearchCompany(r.Context(), req.CompanyName)
	if err != nil {
		middleware.RecordIntegrationError("jigsawstack")
		writeErrorResponse(w, http.StatusBadGateway, "SEARCH_FAILED", "company search failed")
		return
	}

	writeJSON(w, http.StatusOK, info)
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

type visitor struct {
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	now := time.Now()

	if !exists {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}

	if now.Sub(v.lastReset) > rl.window {
		v.count = 1
		v.lastReset = now
		return true
	}

	v.count++
	return v.count <= rl.limit
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastReset) > rl.window*2 {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
