package handler

import (
	"log/slog"

	"github.com/workshop-registry/internal/crud"
	"github.com/workshop-registry/internal/service"
)

// Route - экран приложения, доступный из меню
type Route struct {
	Name string
	List crud.ListModel
}

// Router собирает экраны списков и связывает их с сервисами
type Router struct {
	deptService   service.DepartmentService
	sellerService service.SellerService
	validator     *FormValidator
	logger        *slog.Logger
}

// NewRouter создаёт новый роутер
func NewRouter(
	deptService service.DepartmentService,
	sellerService service.SellerService,
	validator *FormValidator,
	logger *slog.Logger,
) *Router {
	return &Router{
		deptService:   deptService,
		sellerService: sellerService,
		validator:     validator,
		logger:        logger,
	}
}

// Setup создаёт контроллеры списков. host показывает диалоги форм,
// ui - уведомления и подтверждения.
func (r *Router) Setup(host crud.DialogHost, ui crud.UI) []Route {
	sellerKind := NewSellerHandler(r.validator).Kind()
	sellerLauncher := crud.NewLauncher(sellerKind, host, ui, r.logger,
		crud.Lookup{Field: "department", Source: r.deptService},
	)
	sellers := crud.NewListController(sellerKind, ui, sellerLauncher, r.logger)
	sellers.SetService(r.sellerService)

	deptKind := NewDepartmentHandler(r.validator).Kind()
	deptLauncher := crud.NewLauncher(deptKind, host, ui, r.logger)
	departments := crud.NewListController(deptKind, ui, deptLauncher, r.logger)
	departments.SetService(r.deptService)

	return []Route{
		{Name: "sellers", List: sellers},
		{Name: "departments", List: departments},
	}
}
