//go:build darwin

package cocoa

import (
	"fmt"
	"sync"

	"github.com/ebitengine/purego"
	"github.com/ebitengine/purego/objc"

	"github.com/logandonley/docprint/pkg/printing"
)

var frameworks = []string{
	"/System/Library/Frameworks/AppKit.framework/AppKit",
	"/System/Library/Frameworks/PDFKit.framework/PDFKit",
}

var (
	loadOnce sync.Once
	loadErr  error
)

var (
	selAlloc               = objc.RegisterName("alloc")
	selInit                = objc.RegisterName("init")
	selNew                 = objc.RegisterName("new")
	selRelease             = objc.RegisterName("release")
	selDrain               = objc.RegisterName("drain")
	selInitWithUTF8String  = objc.RegisterName("initWithUTF8String:")
	selInitFileURLWithPath = objc.RegisterName("initFileURLWithPath:")
	selInitWithURL         = objc.RegisterName("initWithURL:")
	selSetDocument         = objc.RegisterName("setDocument:")
	selSharedPrintInfo     = objc.RegisterName("sharedPrintInfo")
	selPrintOperation      = objc.RegisterName("printOperationWithView:printInfo:")
	selRunOperation        = objc.RegisterName("runOperation")
	selSharedApplication   = objc.RegisterName("sharedApplication")
	selSetActivationPolicy = objc.RegisterName("setActivationPolicy:")
	selActivate            = objc.RegisterName("activateIgnoringOtherApps:")
)

func loadFrameworks() error {
	loadOnce.Do(func() {
		for _, path := range frameworks {
			if _, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL); err != nil {
				loadErr = fmt.Errorf("loading %s: %w", path, err)
				return
			}
		}
	})
	return loadErr
}

// NSApplicationActivationPolicyRegular
const activationPolicyRegular = 0

type runtimeBridge struct{}

// NewRuntime returns a Bridge backed by the Objective-C runtime
func NewRuntime() (Bridge, error) {
	if err := loadFrameworks(); err != nil {
		return nil, printing.NewInitError("AppKit/PDFKit unavailable", err)
	}
	return runtimeBridge{}, nil
}

func class(name string) objc.ID {
	return objc.ID(objc.GetClass(name))
}

func alloc(name string) objc.ID {
	return class(name).Send(selAlloc)
}

func (runtimeBridge) SharedApplication() ID {
	return ID(class("NSApplication").Send(selSharedApplication))
}

func (runtimeBridge) ActivateApplication(app ID) {
	_ = objc.Send[bool](objc.ID(app), selSetActivationPolicy, activationPolicyRegular)
	objc.ID(app).Send(selActivate, true)
}

func (runtimeBridge) NewString(s string) ID {
	return ID(alloc("NSString").Send(selInitWithUTF8String, s))
}

func (runtimeBridge) NewFileURL(path ID) ID {
	return ID(alloc("NSURL").Send(selInitFileURLWithPath, objc.ID(path)))
}

func (runtimeBridge) NewDocument(url ID) ID {
	return ID(alloc("PDFDocument").Send(selInitWithURL, objc.ID(url)))
}

func (runtimeBridge) NewView(doc ID) ID {
	view := alloc("PDFView").Send(selInit)
	if view != 0 {
		view.Send(selSetDocument, objc.ID(doc))
	}
	return ID(view)
}

func (runtimeBridge) SharedPrintInfo() ID {
	return ID(class("NSPrintInfo").Send(selSharedPrintInfo))
}

func (runtimeBridge) NewPrintOperation(view, info ID) ID {
	return ID(class("NSPrintOperation").Send(selPrintOperation, objc.ID(view), objc.ID(info)))
}

func (runtimeBridge) RunOperation(op ID) {
	// The BOOL result only says whether the user confirmed the panel.
	_ = objc.Send[bool](objc.ID(op), selRunOperation)
}

func (runtimeBridge) Release(obj ID) {
	objc.ID(obj).Send(selRelease)
}

// ShowNativePrintDialog runs ShowPrintDialog against the Objective-C runtime
// inside an autorelease pool. AppKit requires the caller to be on the main
// thread.
func ShowNativePrintDialog(path string) error {
	b, err := NewRuntime()
	if err != nil {
		return err
	}

	pool := class("NSAutoreleasePool").Send(selNew)
	if pool != 0 {
		defer pool.Send(selDrain)
	}

	return ShowPrintDialog(b, path)
}
