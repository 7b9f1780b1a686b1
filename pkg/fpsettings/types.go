package fpsettings

import (
	"github.com/Brian-Campuzano/fprime/internal/settings"
	"github.com/Brian-Campuzano/fprime/internal/translate"
)

// Type aliases re-export the internal types as the public API. Users
// import "github.com/Brian-Campuzano/fprime/pkg/fpsettings" and use
// fpsettings.Settings, fpsettings.Value, etc.

type Settings = settings.Settings
type Value = settings.Value
type Kind = settings.Kind
type Resolver = settings.Resolver
type Remapping = translate.Remapping

const (
	KindScalar   = settings.KindScalar
	KindPathList = settings.KindPathList
	KindText     = settings.KindText
)
