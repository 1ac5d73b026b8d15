package reports

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"pintureria-backend/database"

	"gorm.io/gorm"
)

func cacheTTL() time.Duration {
	// Env: REPORT_CACHE_TTL_SECONDS (default 60s)
	ttl := 60
	if v := strings.TrimSpace(os.Getenv("REPORT_CACHE_TTL_SECONDS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ttl = n
		}
	}
	return time.Duration(ttl) * time.Second
}

func cacheKey(name string, branchId uint, r DateRange, extra string) string {
	return fmt.Sprintf("report:%s:%d:%s:%s:%s",
		name, branchId, r.From.Format("2006-01-02"), r.To.Format("2006-01-02"), extra)
}

// cached wraps a report computation behind the redis cache. On a miss (or with
// redis down) it computes and best-effort stores; cache errors never fail a
// report.
func cached[T any](key string, compute func() (T, error)) (T, error) {
	var out T
	if hit, err := database.GetRedisObject(key, &out); err == nil && hit {
		return out, nil
	}
	out, err := compute()
	if err != nil {
		return out, err
	}
	_ = database.SetRedisObject(key, out, cacheTTL())
	return out, nil
}

func CachedSalesByProduct(db *gorm.DB, branchId uint, r DateRange) (*ProductSalesReport, error) {
	return cached(cacheKey("sales_by_product", branchId, r, ""), func() (*ProductSalesReport, error) {
		return SalesByProduct(db, branchId, r)
	})
}

func CachedSalesByBranch(db *gorm.DB, r DateRange) (*BranchSalesReport, error) {
	return cached(cacheKey("sales_by_branch", 0, r, ""), func() (*BranchSalesReport, error) {
		return SalesByBranch(db, r)
	})
}

func CachedTopCustomers(db *gorm.DB, branchId uint, r DateRange, limit int) ([]TopCustomerRow, error) {
	return cached(cacheKey("top_customers", branchId, r, strconv.Itoa(limit)), func() ([]TopCustomerRow, error) {
		return TopCustomers(db, branchId, r, limit)
	})
}
