/*
Package client implements the MCP protocol exchange for a single server
connection: the initialize handshake and the tools/list, tools/call
operations layered on top of a transport.Transport. It is intentionally
narrow — it emits exactly the four methods the MCP core needs and no
others.

# Basic usage

	c := client.New(someTransport, client.WithClientInfo("my-app", "1.0.0"))

	negotiated, err := c.Initialize(ctx, types.LatestProtocolVersion)
	if err != nil {
		log.Fatal(err)
	}
	defer c.Close()

	tools, err := c.ListTools(ctx)
	...

Client is deliberately unaware of how its transport was constructed or of
any other configured server — orchestrating a whole config's worth of
servers, and exposing their combined tool catalog, is the Manager type in
the root package.
*/
package client
