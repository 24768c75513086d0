// Package hcl_adapter implements the config.Loader interface for HCL
// manifests. A manifest declares the lazily loadable modules:
//
//	module "socketio" {
//	  target      = "socketio"
//	  description = "Connected socket.io client"
//
//	  settings {
//	    url       = "wss://example.com/socket.io"
//	    namespace = "/"
//	  }
//	}
//
// Settings attributes are evaluated at load time into cty values; the
// compiled-in factory registered under the target decides how to interpret
// them.
package hcl_adapter
