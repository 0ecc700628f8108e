package bootstrap

import (
	"time"

	"groomly/internal/pkg/config"
	"groomly/internal/pkg/errs"

	"go.uber.org/fx"
)

var TimeZoneModule = fx.Module("timezone",
	fx.Provide(
		NewShopLocation,
	),
)

// NewShopLocation resolves the shop timezone once. Everything that turns a
// wall-clock date into a day boundary uses this location.
func NewShopLocation(cfg config.Config) (*time.Location, error) {
	loc, err := time.LoadLocation(cfg.Booking.TimeZone)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load booking timezone")
	}
	return loc, nil
}
