package contracts

import "github.com/julienschmidt/httprouter"

// Handler is what the application wrapper mounts: anything that can hang
// its routes on a router.
type Handler interface {
	RegisterRoutes(router *httprouter.Router)
}
