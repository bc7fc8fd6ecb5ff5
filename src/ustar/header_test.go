package ustar

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFieldTable(t *testing.T) {
	end := 0
	for _, f := range headerFields {
		require.GreaterOrEqual(t, f.off, end, "field %s overlaps its predecessor", f.name)
		end = f.off + f.len
	}
	require.LessOrEqual(t, end, 500)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, e := range []EntryStat{
		{Name: "hello.txt", Typeflag: TypeReg, Size: 15, ModTime: 1234567890},
		{Name: "holder/", Typeflag: TypeDir, ModTime: 1234567890},
		{Name: "deep/file.bin", Prefix: "some/long/lead", Typeflag: TypeReg, Size: 1000, ModTime: 1},
	} {
		var b block
		require.NoError(t, encodeHeader(b[:], &e, newHeaderDefaults()))

		hdr, err := decodeHeader(b[:])
		require.NoError(t, err)
		require.Equal(t, e.Name, hdr.Name)
		require.Equal(t, e.Prefix, hdr.Prefix)
		require.Equal(t, e.Typeflag, hdr.Typeflag)
		require.Equal(t, e.Size, hdr.Size)
		require.Equal(t, e.ModTime, hdr.ModTime)
		require.Equal(t, magic, hdr.Magic)
		require.Equal(t, version, hdr.Version)
		require.Equal(t, blockChecksum(b[:]), hdr.Checksum)
	}
}

func TestEncodeFieldLayout(t *testing.T) {
	e := EntryStat{Name: "hello.txt", Typeflag: TypeReg, Size: 15, ModTime: 0o13572635625}
	var b block
	require.NoError(t, encodeHeader(b[:], &e, newHeaderDefaults()))

	require.Equal(t, "hello.txt\x00", string(b[0:10]))
	require.Equal(t, "0000644\x00", string(b[offMode:offMode+8]))
	require.Equal(t, "0000000\x00", string(b[offUID:offUID+8]))
	require.Equal(t, "0000000\x00", string(b[offGID:offGID+8]))
	require.Equal(t, "00000000017\x00", string(b[offSize:offSize+12]))
	require.Equal(t, "13572635625\x00", string(b[offMtime:offMtime+12]))
	require.Equal(t, byte('0'), b[offTypeflag])
	require.Equal(t, "ustar\x00", string(b[offMagic:offMagic+6]))
	require.Equal(t, "00", string(b[offVersion:offVersion+2]))
	require.Equal(t, "0000000\x00", string(b[offDevmajor:offDevmajor+8]))
	require.Equal(t, "0000000\x00", string(b[offDevminor:offDevminor+8]))
}

func TestChecksumSpacesRule(t *testing.T) {
	e := EntryStat{Name: "a/b.txt", Typeflag: TypeReg, Size: 3, ModTime: 99}
	var b block
	require.NoError(t, encodeHeader(b[:], &e, newHeaderDefaults()))

	// Checksum field: 6 octal digits, NUL, space.
	require.Equal(t, byte(0), b[offChecksum+6])
	require.Equal(t, byte(' '), b[offChecksum+7])

	stored, err := strconv.ParseInt(string(b[offChecksum:offChecksum+6]), 8, 64)
	require.NoError(t, err)

	// Recompute by blanking the field to spaces.
	blanked := b
	for i := 0; i < lenChecksum; i++ {
		blanked[offChecksum+i] = ' '
	}
	var sum int64
	for _, c := range blanked {
		sum += int64(c)
	}
	require.Equal(t, sum, stored)
}

func TestEncodeBackslashNormalization(t *testing.T) {
	e := EntryStat{Name: `dir\file.txt`, Typeflag: TypeReg, Size: 0, ModTime: 0}
	var b block
	require.NoError(t, encodeHeader(b[:], &e, newHeaderDefaults()))

	hdr, err := decodeHeader(b[:])
	require.NoError(t, err)
	require.Equal(t, "dir/file.txt", hdr.Name)
}

func TestEncodeDirForcesZeroSize(t *testing.T) {
	e := EntryStat{Name: "d/", Typeflag: TypeDir, Size: 4096, ModTime: 0}
	var b block
	require.NoError(t, encodeHeader(b[:], &e, newHeaderDefaults()))

	hdr, err := decodeHeader(b[:])
	require.NoError(t, err)
	require.Equal(t, int64(0), hdr.Size)
	require.Equal(t, int64(0o755), hdr.Mode)
}

func TestEncodeRejectsOversizeValue(t *testing.T) {
	// 11 octal digits top out one byte below 8 GiB.
	e := EntryStat{Name: "huge.bin", Typeflag: TypeReg, Size: 1 << 33, ModTime: 0}
	var b block
	err := encodeHeader(b[:], &e, newHeaderDefaults())
	require.ErrorIs(t, err, ErrFieldTooLong)

	e.Size = 1 << 36
	err = encodeHeader(b[:], &e, newHeaderDefaults())
	require.ErrorIs(t, err, ErrFieldTooLong)
}

func TestEncodeSizeBoundary(t *testing.T) {
	e := EntryStat{Name: "max.bin", Typeflag: TypeReg, Size: 1<<33 - 1, ModTime: 0}
	var b block
	require.NoError(t, encodeHeader(b[:], &e, newHeaderDefaults()))

	hdr, err := decodeHeader(b[:])
	require.NoError(t, err)
	require.Equal(t, int64(1<<33-1), hdr.Size)
	require.Equal(t, "77777777777\x00", string(b[offSize:offSize+12]))
}

func TestEncodeRejectsNegativeModTime(t *testing.T) {
	e := EntryStat{Name: "old.txt", Typeflag: TypeReg, Size: 0, ModTime: -1}
	var b block
	err := encodeHeader(b[:], &e, newHeaderDefaults())
	require.ErrorIs(t, err, ErrFieldTooLong)
}

func TestEncodeRejectsOversizeUID(t *testing.T) {
	e := EntryStat{Name: "f", Typeflag: TypeReg, Size: 0, ModTime: 0}
	var b block
	err := encodeHeader(b[:], &e, newHeaderDefaults(OptUID(1<<21)))
	require.ErrorIs(t, err, ErrFieldTooLong)
}

func TestEncodeRejectsUnsupportedTypeflag(t *testing.T) {
	e := EntryStat{Name: "link", Typeflag: '2', ModTime: 0}
	var b block
	err := encodeHeader(b[:], &e, newHeaderDefaults())
	require.ErrorIs(t, err, ErrUnsupportedType)
}

func TestEncodeOptions(t *testing.T) {
	e := EntryStat{Name: "f", Typeflag: TypeReg, Size: 1, ModTime: 0}
	var b block
	def := newHeaderDefaults(OptUID(0o1751), OptGID(0o1750), OptFileMode(0o600), OptOwner("tar", "tar"))
	require.NoError(t, encodeHeader(b[:], &e, def))

	hdr, err := decodeHeader(b[:])
	require.NoError(t, err)
	require.Equal(t, int64(0o1751), hdr.UID)
	require.Equal(t, int64(0o1750), hdr.GID)
	require.Equal(t, int64(0o600), hdr.Mode)
	require.Equal(t, "tar", hdr.Uname)
	require.Equal(t, "tar", hdr.Gname)
}

func TestDecodeZeroBlock(t *testing.T) {
	hdr, err := decodeHeader(zeroBlock[:])
	require.NoError(t, err)
	require.Equal(t, byte(0), hdr.Typeflag)
	require.Equal(t, "", hdr.Name)
	require.Equal(t, int64(0), hdr.Size)
}

func TestDecodeRejectsBadOctal(t *testing.T) {
	e := EntryStat{Name: "f", Typeflag: TypeReg, Size: 1, ModTime: 0}
	var b block
	require.NoError(t, encodeHeader(b[:], &e, newHeaderDefaults()))
	copy(b[offSize:], "zzzzzzzzzzz")

	_, err := decodeHeader(b[:])
	require.True(t, errors.Is(err, ErrInvalidHeader))
}
