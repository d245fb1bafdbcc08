package capture

import "context"

// MethodScrape returns the raw framebuffer of the active output.
const MethodScrape = "Scrape"

// Scrape fetches the raw framebuffer. The buffer is returned as received;
// its length is checked against the resolution when it is encoded.
func Scrape(ctx context.Context, c Caller) ([]byte, error) {
	reply, err := c.Call(ctx, Screen(MethodScrape))
	if err != nil {
		return nil, err
	}
	if len(reply) == 0 {
		return nil, shapeError(MethodScrape, "byte array", reply)
	}
	buf, ok := reply[0].([]byte)
	if !ok {
		return nil, shapeError(MethodScrape, "byte array", reply)
	}
	return buf, nil
}
