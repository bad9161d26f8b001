// Package userlang stores users' preferred languages.
//
// Store has three implementations: Memory for tests and development,
// Postgres over a pgx pool, and Cached, a Redis read-through layer in front
// of either. User adapts a store to the middlewares.User contract so the
// Intl middleware can prefer a signed-in user's stored language over
// Accept-Language negotiation.
//
//	pool, err := userlang.OpenPostgres(ctx, pgCfg)
//	if err != nil {
//		return err
//	}
//	if err := userlang.Migrate(ctx, pool, pgCfg.MigrationsTable, log); err != nil {
//		return err
//	}
//
//	rdb, err := userlang.OpenRedis(ctx, redisCfg)
//	if err != nil {
//		return err
//	}
//	store := userlang.NewCached(userlang.NewPostgres(pool), rdb,
//		userlang.WithCachePrefix(redisCfg.Prefix),
//		userlang.WithCacheTTL(redisCfg.TTL),
//	)
//
//	r.Use(middlewares.Intl(base, cache, middlewares.WithUserResolver(
//		func(r *http.Request) (middlewares.User, bool) {
//			id, err := userlang.ParseUserID(r.Header.Get("X-User-ID"))
//			if err != nil {
//				return nil, false
//			}
//			return userlang.User(store, id), true
//		},
//	)))
package userlang
