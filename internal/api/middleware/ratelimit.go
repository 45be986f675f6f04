package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-VenueBooking/internal/api/handlers"
)

const (
	defaultBurst = 5

	// limiterIdleTTL после стольких секунд без запросов ограничитель клиента удаляется
	limiterIdleTTL = 10 * time.Minute
	// sweepInterval как часто проверяются простаивающие ограничители
	sweepInterval = time.Minute

	msgTooManyRequests = "слишком много запросов"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64 // unix nano
}

// RateLimiter ограничивает частоту запросов с одного IP
// Ключ - адрес сокета; X-Forwarded-For учитывается только от доверенных прокси
type RateLimiter struct {
	limiters  sync.Map
	rps       float64
	burst     int
	trusted   []*net.IPNet
	lastSweep atomic.Int64
	now       func() time.Time
}

// NewRateLimiter создает ограничитель; burst <= 0 заменяется значением по умолчанию
// trustedProxies - IP или CIDR прокси, которым разрешено передавать X-Forwarded-For
func NewRateLimiter(rps float64, burst int, trustedProxies []string) *RateLimiter {
	if burst <= 0 {
		burst = defaultBurst
	}
	l := &RateLimiter{
		rps:     rps,
		burst:   burst,
		trusted: ParseTrustedProxies(trustedProxies),
		now:     time.Now,
	}
	l.lastSweep.Store(l.now().UnixNano())
	return l
}

// Middleware возвращает mux middleware
func (l *RateLimiter) Middleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.getLimiter(l.clientIP(r)).Allow() {
				handlers.RespondTooManyRequests(w, msgTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (l *RateLimiter) getLimiter(key string) *rate.Limiter {
	now := l.now()
	l.sweep(now)

	if v, ok := l.limiters.Load(key); ok {
		if entry, ok := v.(*clientLimiter); ok {
			entry.lastSeen.Store(now.UnixNano())
			return entry.limiter
		}
	}

	entry := &clientLimiter{limiter: rate.NewLimiter(rate.Limit(l.rps), l.burst)}
	entry.lastSeen.Store(now.UnixNano())

	actual, loaded := l.limiters.LoadOrStore(key, entry)
	if loaded {
		if actualEntry, ok := actual.(*clientLimiter); ok {
			actualEntry.lastSeen.Store(now.UnixNano())
			return actualEntry.limiter
		}
	}
	return entry.limiter
}

// sweep удаляет ограничители, простаивающие дольше limiterIdleTTL
// Выполняется не чаще раза в sweepInterval одним из запросов
func (l *RateLimiter) sweep(now time.Time) {
	last := l.lastSweep.Load()
	if now.UnixNano()-last < int64(sweepInterval) {
		return
	}
	if !l.lastSweep.CompareAndSwap(last, now.UnixNano()) {
		return
	}

	deadline := now.Add(-limiterIdleTTL).UnixNano()
	l.limiters.Range(func(key, value interface{}) bool {
		if entry, ok := value.(*clientLimiter); ok && entry.lastSeen.Load() < deadline {
			l.limiters.Delete(key)
		}
		return true
	})
}

func (l *RateLimiter) size() int {
	n := 0
	l.limiters.Range(func(_, _ interface{}) bool {
		n++
		return true
	})
	return n
}

// clientIP возвращает адрес клиента
// Без доверенного прокси - хост из RemoteAddr. Если соединение пришло от доверенного прокси,
// X-Forwarded-For читается справа налево до первого недоверенного адреса.
func (l *RateLimiter) clientIP(r *http.Request) string {
	peer := remoteHost(r.RemoteAddr)
	if !l.isTrusted(peer) {
		return peer
	}

	forwarded := r.Header.Values("X-Forwarded-For")
	hops := make([]string, 0, len(forwarded))
	for _, header := range forwarded {
		for _, hop := range strings.Split(header, ",") {
			if hop = strings.TrimSpace(hop); hop != "" {
				hops = append(hops, hop)
			}
		}
	}

	for i := len(hops) - 1; i >= 0; i-- {
		if net.ParseIP(hops[i]) == nil {
			// мусор в заголовке: дальше доверять цепочке нельзя
			return peer
		}
		if !l.isTrusted(hops[i]) {
			return hops[i]
		}
	}
	return peer
}

func (l *RateLimiter) isTrusted(host string) bool {
	ip := net.ParseIP(host)
	if ip == nil {
		return false
	}
	for _, network := range l.trusted {
		if network.Contains(ip) {
			return true
		}
	}
	return false
}

func remoteHost(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}

// ParseTrustedProxies разбирает список IP и CIDR; некорректные записи пропускаются
// (конфигурация проверяет их раньше)
func ParseTrustedProxies(entries []string) []*net.IPNet {
	networks := make([]*net.IPNet, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if _, network, err := net.ParseCIDR(entry); err == nil {
			networks = append(networks, network)
			continue
		}
		ip := net.ParseIP(entry)
		if ip == nil {
			continue
		}
		bits := 128
		if v4 := ip.To4(); v4 != nil {
			ip, bits = v4, 32
		}
		networks = append(networks, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
	}
	return networks
}
