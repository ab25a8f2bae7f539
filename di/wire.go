//go:build wireinject
// +build wireinject

package di

import (
	"campground/config"
	"campground/infras/jwt"
	"campground/infras/kafka"
	"campground/infras/otel"
	"campground/infras/postgres"
	"campground/infras/redis"
	"campground/infras/s3"
	"campground/permissions"
	"campground/shared/cache"
	"campground/transport/http"
	"campground/transport/http/middleware"
	"campground/transport/http/router"

	"github.com/google/wire"

	authService "campground/internal/domains/auth/service"
	bookingRepository "campground/internal/domains/booking/repository"
	bookingService "campground/internal/domains/booking/service"
	campsiteRepository "campground/internal/domains/campsite/repository"
	campsiteService "campground/internal/domains/campsite/service"
	postRepository "campground/internal/domains/post/repository"
	postService "campground/internal/domains/post/service"
	userRepository "campground/internal/domains/user/repository"
	userService "campground/internal/domains/user/service"

	authHandler "campground/internal/handlers/auth"
	bookingHandler "campground/internal/handlers/booking"
	campsiteHandler "campground/internal/handlers/campsite"
	healthHandler "campground/internal/handlers/health"
	postHandler "campground/internal/handlers/post"
	userHandler "campground/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var userDomain = wire.NewSet(
	userService.New,
)

var campsiteDomain = wire.NewSet(
	campsiteRepository.New,
	campsiteService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var postDomain = wire.NewSet(
	postRepository.New,
	postService.New,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	campsiteDomain,
	bookingDomain,
	postDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	campsiteHandler.New,
	bookingHandler.New,
	postHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
