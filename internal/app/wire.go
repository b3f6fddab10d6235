package app

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/kadong/kadong-backend/internal/adapter/postgres"
	currencyrepo "github.com/kadong/kadong-backend/internal/adapter/postgres/currency"
	eventrepo "github.com/kadong/kadong-backend/internal/adapter/postgres/event"
	feedbackrepo "github.com/kadong/kadong-backend/internal/adapter/postgres/feedback"
	goldrepo "github.com/kadong/kadong-backend/internal/adapter/postgres/gold"
	noterepo "github.com/kadong/kadong-backend/internal/adapter/postgres/note"
	"github.com/kadong/kadong-backend/internal/adapter/postgres/passwordreset"
	"github.com/kadong/kadong-backend/internal/adapter/postgres/session"
	userrepo "github.com/kadong/kadong-backend/internal/adapter/postgres/user"
	"github.com/kadong/kadong-backend/internal/adapter/postgres/weatherfav"
	weddingrepo "github.com/kadong/kadong-backend/internal/adapter/postgres/wedding"
	wishlistrepo "github.com/kadong/kadong-backend/internal/adapter/postgres/wishlist"
	currencyprovider "github.com/kadong/kadong-backend/internal/adapter/provider/currency"
	goldprovider "github.com/kadong/kadong-backend/internal/adapter/provider/gold"
	"github.com/kadong/kadong-backend/internal/adapter/provider/metadata"
	weatherprovider "github.com/kadong/kadong-backend/internal/adapter/provider/weather"
	"github.com/kadong/kadong-backend/internal/adapter/redis"
	jwtauth "github.com/kadong/kadong-backend/internal/auth"
	"github.com/kadong/kadong-backend/internal/config"
	"github.com/kadong/kadong-backend/internal/service/auth"
	"github.com/kadong/kadong-backend/internal/service/currency"
	"github.com/kadong/kadong-backend/internal/service/event"
	"github.com/kadong/kadong-backend/internal/service/feedback"
	"github.com/kadong/kadong-backend/internal/service/gold"
	"github.com/kadong/kadong-backend/internal/service/note"
	"github.com/kadong/kadong-backend/internal/service/user"
	"github.com/kadong/kadong-backend/internal/service/weather"
	"github.com/kadong/kadong-backend/internal/service/wedding"
	"github.com/kadong/kadong-backend/internal/service/wishlist"
	"github.com/kadong/kadong-backend/internal/transport/respond"
	"github.com/kadong/kadong-backend/internal/transport/rest"
)

type services struct {
	auth     *auth.Service
	user     *user.Service
	note     *note.Service
	event    *event.Service
	wishlist *wishlist.Service
	wedding  *wedding.Service
	feedback *feedback.Service
	weather  *weather.Service
	gold     *gold.Service
	currency *currency.Service
}

func newServices(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, rdb *goredis.Client) *services {
	tx := postgres.NewTxManager(pool)
	users := userrepo.New(pool)

	wishlistItems := wishlistrepo.New(pool)

	weatherSvc := weather.NewService(logger,
		weatherprovider.NewProvider(cfg.Providers.Weather, logger),
		weatherfav.New(pool))
	if rdb != nil {
		weatherSvc.UseCache(redis.NewJSONCache(rdb, "weather"), cfg.Providers.Weather.CacheTTL)
	}

	return &services{
		auth: auth.NewService(logger,
			users,
			session.New(pool),
			passwordreset.New(pool),
			tx,
			jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
			jwtauth.NewPasswordHasher(cfg.Auth.BcryptCost),
			cfg.Auth,
		),
		user:  user.NewService(logger, users),
		note:  note.NewService(logger, noterepo.New(pool)),
		event: event.NewService(logger, eventrepo.New(pool)),
		wishlist: wishlist.NewService(logger,
			wishlistItems,
			wishlistItems,
			tx,
			metadata.NewExtractor(cfg.Providers.Metadata, logger),
		),
		wedding:  wedding.NewService(logger, weddingrepo.New(pool, tx)),
		feedback: feedback.NewService(logger, feedbackrepo.New(pool)),
		weather:  weatherSvc,
		gold:     NewGoldService(cfg, logger, pool),
		currency: NewCurrencyService(cfg, logger, pool),
	}
}

// NewGoldService builds the gold service over every configured provider.
// kadongctl shares it with the server.
func NewGoldService(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) *gold.Service {
	var sources []gold.Source
	for _, s := range goldprovider.NewSources(cfg.Providers.Gold, logger) {
		sources = append(sources, s)
	}
	return gold.NewService(logger, goldrepo.New(pool), cfg.Providers.Gold.RefreshInterval, sources...)
}

// NewCurrencyService builds the currency service.
func NewCurrencyService(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) *currency.Service {
	return currency.NewService(logger,
		currencyrepo.New(pool),
		currencyprovider.NewProvider(cfg.Providers.Currency, logger),
		cfg.Providers.Currency.TTL,
	)
}

func newHandlers(
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	rdb *goredis.Client,
	svc *services,
) rest.Handlers {
	errs := respond.NewErrors(logger, cfg.App.IsProduction())

	health := rest.NewHealthHandler(pool, nil, Version)
	if rdb != nil {
		health = rest.NewHealthHandler(pool, redis.NewPinger(rdb), Version)
	}

	return rest.Handlers{
		Health:   health,
		Auth:     rest.NewAuthHandler(svc.auth, svc.user, errs),
		Notes:    rest.NewNoteHandler(svc.note, errs),
		Events:   rest.NewEventHandler(svc.event, errs),
		Wishlist: rest.NewWishlistHandler(svc.wishlist, errs),
		Wedding:  rest.NewWeddingHandler(svc.wedding, errs),
		Feedback: rest.NewFeedbackHandler(svc.feedback, errs),
		Weather:  rest.NewWeatherHandler(svc.weather, errs),
		Market:   rest.NewMarketHandler(svc.gold, svc.currency, errs),
		Admin:    rest.NewAdminHandler(svc.gold, svc.currency, svc.auth, errs, logger),
	}
}
