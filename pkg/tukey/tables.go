package tukey

// Upper critical values q(alpha; k, df) of the Studentized range
// distribution, from the classical tables (Harter 1960, as reproduced in
// standard ANOVA references). Columns are k = 2..10 treatment groups, rows
// are the degrees of freedom listed in tableDF. The final row holds the
// asymptotic (df = infinity) values.

var tableDF = []float64{
	1, 2, 3, 4, 5, 6, 7, 8, 9, 10,
	11, 12, 13, 14, 15, 16, 17, 18, 19, 20,
	24, 30, 40, 60, 120,
}

// q005[i][j] = q(0.05; k=j+2, df=tableDF[i]); last row is df = inf.
var q005 = [][]float64{
	{17.97, 26.98, 32.82, 37.08, 40.41, 43.12, 45.40, 47.36, 49.07},
	{6.08, 8.33, 9.80, 10.88, 11.74, 12.44, 13.03, 13.54, 13.99},
	{4.50, 5.91, 6.82, 7.50, 8.04, 8.48, 8.85, 9.18, 9.46},
	{3.93, 5.04, 5.76, 6.29, 6.71, 7.05, 7.35, 7.60, 7.83},
	{3.64, 4.60, 5.22, 5.67, 6.03, 6.33, 6.58, 6.80, 6.99},
	{3.46, 4.34, 4.90, 5.30, 5.63, 5.90, 6.12, 6.32, 6.49},
	{3.34, 4.16, 4.68, 5.06, 5.36, 5.61, 5.82, 6.00, 6.16},
	{3.26, 4.04, 4.53, 4.89, 5.17, 5.40, 5.60, 5.77, 5.92},
	{3.20, 3.95, 4.41, 4.76, 5.02, 5.24, 5.43, 5.59, 5.74},
	{3.15, 3.88, 4.33, 4.65, 4.91, 5.12, 5.30, 5.46, 5.60},
	{3.11, 3.82, 4.26, 4.57, 4.82, 5.03, 5.20, 5.35, 5.49},
	{3.08, 3.77, 4.20, 4.51, 4.75, 4.95, 5.12, 5.27, 5.39},
	{3.06, 3.73, 4.15, 4.45, 4.69, 4.88, 5.05, 5.19, 5.32},
	{3.03, 3.70, 4.11, 4.41, 4.64, 4.83, 4.99, 5.13, 5.25},
	{3.01, 3.67, 4.08, 4.37, 4.59, 4.78, 4.94, 5.08, 5.20},
	{3.00, 3.65, 4.05, 4.33, 4.56, 4.74, 4.90, 5.03, 5.15},
	{2.98, 3.63, 4.02, 4.30, 4.52, 4.70, 4.86, 4.99, 5.11},
	{2.97, 3.61, 4.00, 4.28, 4.49, 4.67, 4.82, 4.96, 5.07},
	{2.96, 3.59, 3.98, 4.25, 4.47, 4.65, 4.79, 4.92, 5.04},
	{2.95, 3.58, 3.96, 4.23, 4.45, 4.62, 4.77, 4.90, 5.01},
	{2.92, 3.53, 3.90, 4.17, 4.37, 4.54, 4.68, 4.81, 4.92},
	{2.89, 3.49, 3.85, 4.10, 4.30, 4.46, 4.60, 4.72, 4.82},
	{2.86, 3.44, 3.79, 4.04, 4.23, 4.39, 4.52, 4.63, 4.73},
	{2.83, 3.40, 3.74, 3.98, 4.16, 4.31, 4.44, 4.55, 4.65},
	{2.80, 3.36, 3.68, 3.92, 4.10, 4.24, 4.36, 4.47, 4.56},
	{2.77, 3.31, 3.63, 3.86, 4.03, 4.17, 4.29, 4.39, 4.47},
}

// q001[i][j] = q(0.01; k=j+2, df=tableDF[i]); last row is df = inf.
var q001 = [][]float64{
	{90.03, 135.0, 164.3, 185.6, 202.2, 215.8, 227.2, 237.0, 245.6},
	{14.04, 19.02, 22.29, 24.72, 26.63, 28.20, 29.53, 30.68, 31.69},
	{8.26, 10.62, 12.17, 13.33, 14.24, 15.00, 15.64, 16.20, 16.69},
	{6.51, 8.12, 9.17, 9.96, 10.58, 11.10, 11.55, 11.93, 12.27},
	{5.70, 6.98, 7.80, 8.42, 8.91, 9.32, 9.67, 9.97, 10.24},
	{5.24, 6.33, 7.03, 7.56, 7.97, 8.32, 8.61, 8.87, 9.10},
	{4.95, 5.92, 6.54, 7.01, 7.37, 7.68, 7.94, 8.17, 8.37},
	{4.75, 5.64, 6.20, 6.62, 6.96, 7.24, 7.47, 7.68, 7.86},
	{4.60, 5.43, 5.96, 6.35, 6.66, 6.91, 7.13, 7.33, 7.49},
	{4.48, 5.27, 5.77, 6.14, 6.43, 6.67, 6.87, 7.05, 7.21},
	{4.39, 5.15, 5.62, 5.97, 6.25, 6.48, 6.67, 6.84, 6.99},
	{4.32, 5.05, 5.50, 5.84, 6.10, 6.32, 6.51, 6.67, 6.81},
	{4.26, 4.96, 5.40, 5.73, 5.98, 6.19, 6.37, 6.53, 6.67},
	{4.21, 4.89, 5.32, 5.63, 5.88, 6.08, 6.26, 6.41, 6.54},
	{4.17, 4.84, 5.25, 5.56, 5.80, 5.99, 6.16, 6.31, 6.44},
	{4.13, 4.79, 5.19, 5.49, 5.72, 5.92, 6.08, 6.22, 6.35},
	{4.10, 4.74, 5.14, 5.43, 5.66, 5.85, 6.01, 6.15, 6.27},
	{4.07, 4.70, 5.09, 5.38, 5.60, 5.79, 5.94, 6.08, 6.20},
	{4.05, 4.67, 5.05, 5.33, 5.55, 5.73, 5.89, 6.02, 6.14},
	{4.02, 4.64, 5.02, 5.29, 5.51, 5.69, 5.84, 5.97, 6.09},
	{3.96, 4.55, 4.91, 5.17, 5.37, 5.54, 5.69, 5.81, 5.92},
	{3.89, 4.45, 4.80, 5.05, 5.24, 5.40, 5.54, 5.65, 5.76},
	{3.82, 4.37, 4.70, 4.93, 5.11, 5.26, 5.39, 5.50, 5.60},
	{3.76, 4.28, 4.59, 4.82, 4.99, 5.13, 5.25, 5.36, 5.45},
	{3.70, 4.20, 4.50, 4.71, 4.87, 5.01, 5.12, 5.21, 5.30},
	{3.64, 4.12, 4.40, 4.60, 4.76, 4.88, 4.99, 5.08, 5.16},
}
