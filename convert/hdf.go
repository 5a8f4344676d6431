package convert

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/meerestier/espa-product-formatter/espa"
	"github.com/meerestier/espa-product-formatter/hdf5"
	"github.com/meerestier/espa-product-formatter/internal/envi"
)

// hdfDatatype maps the model's pixel type to the container element type.
func hdfDatatype(dt espa.DataType) (hdf5.Datatype, error) {
	switch dt {
	case espa.Int8:
		return hdf5.Int8, nil
	case espa.Uint8:
		return hdf5.Uint8, nil
	case espa.Int16:
		return hdf5.Int16, nil
	case espa.Uint16:
		return hdf5.Uint16, nil
	case espa.Int32:
		return hdf5.Int32, nil
	case espa.Uint32:
		return hdf5.Uint32, nil
	case espa.Float32:
		return hdf5.Float32, nil
	case espa.Float64:
		return hdf5.Float64, nil
	}
	return 0, fmt.Errorf("unsupported data type %q", dt)
}

// ConvertToHDF assembles the legacy multi-SDS container at hdfPath from the
// product metadata. Pixel data stays in the original raw-binary band files;
// each dataset references its band file externally at byte offset zero.
// An ENVI-style header describing the primary band is written alongside at
// hdfPath + ".hdr". On failure the on-disk container is not valid output.
func ConvertToHDF(meta *espa.Metadata, hdfPath string, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	log := o.logger

	slots, err := ResolveLayout(HDFLayout, meta.Bands)
	if err != nil {
		return fmt.Errorf("resolving band layout: %w", err)
	}

	inst := espa.ResolveInstrument(meta.Global.Instrument)
	cls, err := Classify(inst, meta.Bands)
	if err != nil {
		return fmt.Errorf("classifying bands: %w", err)
	}

	globalAttrs, err := GlobalAttrs(meta, cls)
	if err != nil {
		return fmt.Errorf("building global attributes: %w", err)
	}

	f, err := hdf5.Create(hdfPath)
	if err != nil {
		return fmt.Errorf("creating container %s: %w", hdfPath, err)
	}

	if err := writeDatasets(f, slots, log); err != nil {
		f.Close()
		return err
	}

	for _, attr := range globalAttrs {
		if err := f.SetAttribute(attr.Name, attr.Value); err != nil {
			f.Close()
			return fmt.Errorf("writing global attribute %q: %w", attr.Name, err)
		}
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("finalizing container %s: %w", hdfPath, err)
	}

	// The primary band (layout row 0) drives the sidecar header.
	primary := slots[0].Band
	hdr, err := envi.FromBand(primary)
	if err != nil {
		return fmt.Errorf("building sidecar header: %w", err)
	}
	if err := hdr.WriteFile(hdfPath + ".hdr"); err != nil {
		return fmt.Errorf("writing sidecar header: %w", err)
	}

	return nil
}

// writeDatasets creates one external dataset per matched layout slot, in
// table order.
func writeDatasets(f *hdf5.File, slots []ResolvedSlot, log *zap.Logger) error {
	for _, slot := range slots {
		if !slot.Matched() {
			log.Debug("skipping optional band", zap.String("source", slot.Source))
			continue
		}
		b := slot.Band

		log.Info("Processing SDS",
			zap.String("source", b.Name),
			zap.String("target", slot.Target))

		dt, err := hdfDatatype(b.DataType)
		if err != nil {
			return fmt.Errorf("band %q: %w", b.Name, err)
		}

		attrs, err := BandAttrs(b)
		if err != nil {
			return fmt.Errorf("building attributes: %w", err)
		}

		dsOpts := []hdf5.DatasetOption{
			hdf5.WithDimensionNames("YDim", "XDim"),
		}
		for _, attr := range attrs {
			dsOpts = append(dsOpts, hdf5.WithAttribute(attr.Name, attr.Value))
		}

		_, err = f.CreateExternalDataset(slot.Target, dt,
			[2]uint64{uint64(b.NLines), uint64(b.NSamps)},
			b.FileName, 0, dsOpts...)
		if err != nil {
			return fmt.Errorf("creating dataset %q: %w", slot.Target, err)
		}
	}
	return nil
}
