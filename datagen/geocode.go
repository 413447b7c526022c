package datagen

// Geocoder 把地址解析为坐标。地理编码是外部协作方（线上用的是
// 在线地理编码服务）；生成器默认用静态城市质心实现，避免网络依赖。
type Geocoder interface {
	// Geocode 解析地址；解析不到时 ok 为 false，调用方按 (0, 0) 处理
	Geocode(street, city string) (lat, lng float64, ok bool)
}

// StaticGeocoder 用内置的城市质心坐标实现 Geocoder。
// 街道粒度不区分，同城事件共享坐标。
type StaticGeocoder struct{}

var cityCentroids = map[string][2]float64{
	"Athens":       {37.9838, 23.7275},
	"Patras":       {38.2466, 21.7346},
	"Thessaloniki": {40.6401, 22.9444},
	"Seattle":      {47.6062, -122.3321},
	"Toronto":      {43.6532, -79.3832},
	"Paris":        {48.8566, 2.3522},
	"London":       {51.5074, -0.1278},
	"Madrid":       {40.4168, -3.7038},
	"Rome":         {41.9028, 12.4964},
	"Berlin":       {52.5200, 13.4050},
	"Amsterdam":    {52.3676, 4.9041},
	"Sydney":       {-33.8688, 151.2093},
}

func (StaticGeocoder) Geocode(_, city string) (float64, float64, bool) {
	c, ok := cityCentroids[city]
	if !ok {
		return 0, 0, false
	}
	return c[0], c[1], true
}

const geohashBase32 = "0123456789bcdefghjkmnpqrstuvwxyz"

// EncodeGeohash 计算坐标的 geohash（precision 位，常用 12）。
// 经纬度交替二分，5 bit 一个 base32 字符。
func EncodeGeohash(lat, lng float64, precision int) string {
	if precision <= 0 {
		precision = 12
	}

	latLo, latHi := -90.0, 90.0
	lngLo, lngHi := -180.0, 180.0

	var (
		hash    []byte
		bits    int
		ch      int
		isEven  = true
	)

	for len(hash) < precision {
		if isEven {
			mid := (lngLo + lngHi) / 2
			if lng >= mid {
				ch = ch<<1 | 1
				lngLo = mid
			} else {
				ch <<= 1
				lngHi = mid
			}
		} else {
			mid := (latLo + latHi) / 2
			if lat >= mid {
				ch = ch<<1 | 1
				latLo = mid
			} else {
				ch <<= 1
				latHi = mid
			}
		}
		isEven = !isEven

		bits++
		if bits == 5 {
			hash = append(hash, geohashBase32[ch])
			bits = 0
			ch = 0
		}
	}

	return string(hash)
}
