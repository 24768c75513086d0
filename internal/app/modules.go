package app

import (
	"github.com/vk/lazymodgo/internal/registry"
	"github.com/vk/lazymodgo/modules/envvars"
	"github.com/vk/lazymodgo/modules/httpclient"
	"github.com/vk/lazymodgo/modules/printer"
	"github.com/vk/lazymodgo/modules/socketio"
)

// coreModules is the definitive list of all module factories that are
// compiled into the lazymodgo binary.
var coreModules = []registry.Module{
	&envvars.Module{},
	&httpclient.Module{},
	&printer.Module{},
	&socketio.Module{},
}
