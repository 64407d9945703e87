/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package freshness

import (
	"fmt"
	"time"
)

// Window is a daily local-time interval [Start, End) in a market time zone.
type Window struct {
	Location *time.Location
	Start    time.Duration
	End      time.Duration
}

// NewWindow builds a window from an IANA zone name and "HH:MM" bounds.
func NewWindow(zone, start, end string) (Window, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return Window{}, fmt.Errorf("load market time zone %q: %w", zone, err)
	}
	startOffset, err := parseClock(start)
	if err != nil {
		return Window{}, err
	}
	endOffset, err := parseClock(end)
	if err != nil {
		return Window{}, err
	}
	if endOffset <= startOffset {
		return Window{}, fmt.Errorf("freeze window end %s must be after start %s", end, start)
	}
	return Window{Location: loc, Start: startOffset, End: endOffset}, nil
}

// Contains reports whether now, converted to the window's zone, falls inside [Start, End).
func (w Window) Contains(now time.Time) bool {
	local := now.In(w.Location)
	sinceMidnight := time.Duration(local.Hour())*time.Hour +
		time.Duration(local.Minute())*time.Minute +
		time.Duration(local.Second())*time.Second +
		time.Duration(local.Nanosecond())
	return sinceMidnight >= w.Start && sinceMidnight < w.End
}

func parseClock(value string) (time.Duration, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", value, err)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}
