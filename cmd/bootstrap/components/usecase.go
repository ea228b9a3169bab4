package components

import (
	"library-admin/internal/pkg/clock"
	"library-admin/internal/pkg/config"
	"library-admin/internal/usecase"
	"library-admin/internal/usecase/commands"
	"library-admin/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewLoanUseCase,
		commands.NewCatalogUseCase,
		commands.NewUserUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		func(s queries.ActivityReadStore, u queries.UserReadStore, lib config.LibraryConfig) queries.ActivityQueries {
			return queries.NewActivityQueries(s, u, lib.PageSize)
		},
		func(d queries.DashboardReadStore, a queries.ActivityReadStore, lib config.LibraryConfig) queries.DashboardQueries {
			return queries.NewDashboardQueries(d, a, lib.PageSize)
		},
		func(b queries.BookReadStore, lib config.LibraryConfig) queries.BookQueries {
			return queries.NewBookQueries(b, lib.PageSize)
		},
		func(u queries.UserReadStore, i queries.IssueReadStore, a queries.ActivityReadStore, lib config.LibraryConfig) queries.UserQueries {
			return queries.NewUserQueries(u, i, a, lib.PageSize)
		},
		queries.NewIssueQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
