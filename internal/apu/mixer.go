package apu

// Mixer combines the four channels' (amplitude, volume) pairs into a single
// mixed level per the NR50/NR51 master volume and panning registers.
//
// Each channel contributes its own 0-15 digital amplitude; the mixer's
// per-channel "volume" is the sum of whichever SO1/SO2 (NR50) master volume
// that channel is routed to via NR51 - so a channel panned to both sides
// contributes up to 7+7=14. Theoretical maximum: 14 (volume) * 15
// (amplitude) * 4 (channels) = 840. mixerHeadroom declares 3x that as
// headroom so no single loud channel saturates the output.
const (
	maxMixVolume  = 840
	mixerHeadroom = maxMixVolume * 3
)

// Mixer handles audio mixing and output for the APU
type Mixer struct {
	// No internal state needed - mixing is stateless
}

// NewMixer creates a new audio mixer
func NewMixer() *Mixer {
	return &Mixer{}
}

// Reset initializes the mixer to its default state
func (m *Mixer) Reset() {
	// Mixer is stateless, nothing to reset
}

// channelVolume returns the NR50/NR51-derived volume (0-14) for channel id
// (0=CH1, 1=CH2, 2=CH3, 3=CH4): so1Volume if routed to the left output,
// plus so2Volume if also routed to the right output.
func channelVolume(id uint8, nr50, nr51 uint8) uint8 {
	so1Volume := (nr50 >> 4) & 0x07
	so2Volume := nr50 & 0x07

	var volume uint8
	if nr51&(1<<id) != 0 { // routed to SO1 (left)
		volume += so1Volume
	}
	if nr51&(1<<(id+4)) != 0 { // routed to SO2 (right)
		volume += so2Volume
	}
	return volume
}

// Sample mixes the four channels' current raw digital amplitudes (0-15, see
// each channel's GetAmplitude) into a single normalized level in [-1, 1],
// following spec.md's exact integer formula: sum amplitude*volume across
// channels, noise halved before summing, scaled against a 3x-headroom
// maximum rather than the bare 840 theoretical peak.
func (m *Mixer) Sample(amp1, amp2, amp3, amp4 uint8, nr50, nr51 uint8) float32 {
	var vol uint16
	vol += uint16(amp1) * uint16(channelVolume(0, nr50, nr51))
	vol += uint16(amp2) * uint16(channelVolume(1, nr50, nr51))
	vol += uint16(amp3) * uint16(channelVolume(2, nr50, nr51))
	vol += (uint16(amp4) * uint16(channelVolume(3, nr50, nr51))) / 2 // soften the noise

	if vol > maxMixVolume {
		vol = maxMixVolume // hardware never exceeds this; clamp defensively
	}

	return float32(vol) / float32(mixerHeadroom)
}

// GetMixerInfo returns current mixer configuration info
func (m *Mixer) GetMixerInfo(nr50, nr51 uint8) MixerInfo {
	return MixerInfo{
		LeftVolume:  float32((nr50>>4)&0x07) / 7.0,
		RightVolume: float32(nr50&0x07) / 7.0,
		Ch1Left:     (nr51 & 0x10) != 0,
		Ch1Right:    (nr51 & 0x01) != 0,
		Ch2Left:     (nr51 & 0x20) != 0,
		Ch2Right:    (nr51 & 0x02) != 0,
		Ch3Left:     (nr51 & 0x40) != 0,
		Ch3Right:    (nr51 & 0x04) != 0,
		Ch4Left:     (nr51 & 0x80) != 0,
		Ch4Right:    (nr51 & 0x08) != 0,
	}
}

// MixerInfo contains information about mixer configuration
type MixerInfo struct {
	LeftVolume  float32
	RightVolume float32
	Ch1Left     bool
	Ch1Right    bool
	Ch2Left     bool
	Ch2Right    bool
	Ch3Left     bool
	Ch3Right    bool
	Ch4Left     bool
	Ch4Right    bool
}