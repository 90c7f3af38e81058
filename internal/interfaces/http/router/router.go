// Package router assembles the gin engine of the billing API.
package router

import (
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
)

// RouteRegistrar is implemented by handlers that own a set of routes.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// RegistrarFunc lets a plain function register routes.
type RegistrarFunc func(rg *gin.RouterGroup)

// RegisterRoutes calls f.
func (f RegistrarFunc) RegisterRoutes(rg *gin.RouterGroup) { f(rg) }

// Router mounts domain groups under /api/<version>.
type Router struct {
	engine     *gin.Engine
	apiVersion string
	groups     []*DomainGroup
}

// RouterOption configures a Router
type RouterOption func(*Router)

// WithAPIVersion replaces the default "v1" prefix.
func WithAPIVersion(version string) RouterOption {
	return func(r *Router) {
		r.apiVersion = version
	}
}

// NewRouter creates a Router over engine.
func NewRouter(engine *gin.Engine, opts ...RouterOption) *Router {
	r := &Router{engine: engine, apiVersion: "v1"}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// BasePath is the prefix every group is mounted under.
func (r *Router) BasePath() string {
	return "/api/" + r.apiVersion
}

// Register queues groups for Setup.
func (r *Router) Register(groups ...*DomainGroup) *Router {
	r.groups = append(r.groups, groups...)
	return r
}

// Setup mounts the queued groups and returns the API routes now served,
// sorted by path then method.
func (r *Router) Setup() []gin.RouteInfo {
	api := r.engine.Group(r.BasePath())
	for _, g := range r.groups {
		g.RegisterRoutes(api)
	}

	var routes []gin.RouteInfo
	for _, route := range r.engine.Routes() {
		if strings.HasPrefix(route.Path, r.BasePath()+"/") {
			routes = append(routes, route)
		}
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path != routes[j].Path {
			return routes[i].Path < routes[j].Path
		}
		return routes[i].Method < routes[j].Method
	})
	return routes
}

// DomainGroup is one bounded context's routes with their own middleware.
type DomainGroup struct {
	name       string
	prefix     string
	middleware []gin.HandlerFunc
	registrars []RouteRegistrar
}

// NewDomainGroup creates a group mounted at prefix.
func NewDomainGroup(name, prefix string) *DomainGroup {
	return &DomainGroup{name: name, prefix: prefix}
}

// Use adds middleware that runs only inside this group.
func (dg *DomainGroup) Use(middleware ...gin.HandlerFunc) *DomainGroup {
	dg.middleware = append(dg.middleware, middleware...)
	return dg
}

// Add mounts a registrar inside this group.
func (dg *DomainGroup) Add(registrar RouteRegistrar) *DomainGroup {
	dg.registrars = append(dg.registrars, registrar)
	return dg
}

// Name identifies the group in logs.
func (dg *DomainGroup) Name() string { return dg.name }

// RegisterRoutes implements RouteRegistrar.
func (dg *DomainGroup) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group(dg.prefix, dg.middleware...)
	for _, registrar := range dg.registrars {
		registrar.RegisterRoutes(group)
	}
}
