package usecase

import (
	"context"
	"log"
	"time"

	"opocentral/internal/domain/opportunity"
	"opocentral/internal/search"
)

type OpportunityListUsecase interface {
	ListOpportunities(ctx context.Context, q search.Query) ([]opportunity.Opportunity, error)
}

type OpportunityList struct {
	opportunities opportunity.Repository
	cache         SearchCache
	cacheTTL      time.Duration
	logger        *log.Logger
}

func NewOpportunityListUsecase(opps opportunity.Repository, cache SearchCache, cacheTTL time.Duration, logger *log.Logger) *OpportunityList {
	return &OpportunityList{opportunities: opps, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

// ListOpportunities loads the active set from the store and narrows it with
// the in-memory filter engine. Filtered results are cached keyed on the
// normalized query; a short SetNX lock keeps concurrent identical searches
// from stampeding the store.
func (u *OpportunityList) ListOpportunities(ctx context.Context, q search.Query) ([]opportunity.Opportunity, error) {
	cacheable := u.cache != nil && !q.IsEmpty()
	cacheKey := ""
	lockKey := ""

	if cacheable {
		cacheKey = OpportunitySearchCacheKey(q)
		lockKey = OpportunitySearchLockKey(cacheKey)

		var cached []opportunity.Opportunity
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Opportunities] Cache HIT: %s", cacheKey)
			}
			return cached, nil
		}
		if u.logger != nil {
			u.logger.Printf("[Opportunities] Cache MISS: %s", cacheKey)
		}
	}

	lockAcquired := false
	if cacheable {
		ok, err := u.cache.SetIfNotExists(ctx, lockKey, "1", 30*time.Second)
		if err == nil && ok {
			lockAcquired = true
		} else if err == nil && !ok {
			jitter := time.Duration(time.Now().UnixNano()%201) * time.Millisecond
			time.Sleep(300*time.Millisecond + jitter)
			var cached []opportunity.Opportunity
			hit, err2 := u.cache.GetJSON(ctx, cacheKey, &cached)
			if err2 == nil && hit {
				return cached, nil
			}
		}
	}

	opps, err := u.opportunities.ListActive(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	out := search.Filter(opps, q)

	if cacheable {
		_ = u.cache.SetJSON(ctx, cacheKey, out, u.cacheTTL)
		if lockAcquired {
			_ = u.cache.Delete(ctx, lockKey)
		}
	}

	return out, nil
}
