// Package live serves an accordion whose state lives on the server.
//
// Each websocket session owns a document and an accordion.Group bound to a
// host that mirrors the browser: the client reports its viewport width,
// content heights and reduced-motion preference, and forwards control
// clicks. The server runs transitions on its own frame ticker and streams
// the attribute changes back as patches:
//
//	client: {"type":"hello","width":1280,"heights":{"acc-1":240}}
//	client: {"type":"click","item":"acc-1"}
//	server: {"type":"patch","patches":[{"target":"#acc-1-btn","attr":"aria-expanded","value":"true"}, ...]}
//
// Malformed messages are answered with {"type":"error","code":"L001"}.
//
// Server.Reconfigure hands new options to every session's loop, so a
// config reload changes breakpoints, duration and auto-close in open tabs.
//
// # Basic Usage
//
//	srv := live.NewServer(live.Config{
//	    Page:        func() (*vdom.VNode, error) { return render.ParseString(page) },
//	    ContainerID: "faq",
//	})
//	http.ListenAndServe(":3000", srv.Handler())
package live
