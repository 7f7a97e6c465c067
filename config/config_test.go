package config

import (
	"testing"

	"github.com/huekit-cli/huekit/filesystem"
	"github.com/huekit-cli/huekit/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	// Use in-memory filesystem for tests to avoid touching real directories
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetBool(key.SwatchEnabled), ShouldBeTrue)
			So(viper.GetInt(key.SwatchWidth), ShouldEqual, 8)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("swatch.enabled"), ShouldEqual, "swatch_enabled")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Field metadata", t, func() {
		Convey("Env names carry the app prefix", func() {
			f := Default[key.SwatchWidth]
			So(f.Env(), ShouldEqual, "HUEKIT_SWATCH_WIDTH")
		})

		Convey("Every registered field is env exposed", func() {
			So(len(EnvExposed), ShouldEqual, len(Default))
		})

		Convey("Pretty output mentions the key", func() {
			f := Default[key.SwatchWidth]
			So(f.Pretty(), ShouldContainSubstring, key.SwatchWidth)
		})
	})
}
