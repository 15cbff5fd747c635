// Code generated from the Grain LFSR parameter derivation for the BLS12-377
// scalar field; round constants and mixing matrices are stored as Montgomery
// limbs. DO NOT EDIT.

package params

import "github.com/consensys/gnark-crypto/ecc/bls12-377/fr"


var poseidonBls377Rate2 = defaultTable{
	rate:          2,
	capacity:      1,
	fullRounds:    8,
	partialRounds: 31,
	alpha:         17,
	ark: [][]fr.Element{
		{{0x9ec464191dff626d, 0xe3afe4fc52de2c3e, 0x55098efb31c5bb8a, 0x0f51daa50d9eca73}, {0x5d10c94384e955b9, 0xa0ff049c6b09597b, 0x88f1e8263b3c7219, 0x072ebc82c44a6f65}, {0x49caf68d25cdb9f9, 0xfe42e5325bd12d75, 0xe3e3cb6b932d45af, 0x0f66f5ed24cd0873}},
		{{0x53ef1989e533d3ca, 0xa45703bbb56d59c1, 0xba8aedc20c662bf6, 0x05a32d3a8421d9ad}, {0x6457a7e4c5678437, 0xba7a6987f4f57a6a, 0xf4815167645f1a57, 0x0a5dc656713fb8a0}, {0x235b0b1555642db5, 0xcec9b78e44325abc, 0x2c9563f8da1d08d0, 0x0a57cccb809b2880}},
		{{0x1029d909e6027efe, 0xaf9468e7372d5724, 0x3bc1ed72b652b16f, 0x03ff277709c4d56f}, {0x8832930f567fa582, 0xa8f83263a19791a3, 0x50d0d3408b6b04e5, 0x037574ef84e565ae}, {0xb35c1903ca017011, 0xc1386268816fd161, 0x1445750501a3d4e7, 0x04be77d725b0dd8f}},
		{{0xd294950b1e1e3741, 0x3b334cc79a833de3, 0xff5871e159439902, 0x029925877e112131}, {0xb3a38d95e1f97fd5, 0x545cf6fe79bb544f, 0x894e3746765042df, 0x0889051459c99d4c}, {0x299bc35698f34a2c, 0x711b785113e1400b, 0xaac79823d636106f, 0x0f8d542c206a2e9f}},
		{{0x09938734953d0983, 0x700ed38f8bc8ea7b, 0x49b257f4f65d2812, 0x0d72e7d074c95c5b}, {0x097737f650c322d2, 0xd0d7b9b75e137f4f, 0x1f92e2819efe9a5b, 0x10a6d950e906c671}, {0x1aeb383a27e36474, 0x500e50d8c9564698, 0x870bc0e7677c4113, 0x116378547e3583a9}},
		{{0x3f6b9f1ead24181e, 0x0aa25f4a586c604a, 0xf8501dd7c7261c88, 0x0b6995183189f583}, {0xeaeb5379b4aa7a8d, 0x6646f3cc489c24ed, 0x6b27d15587e9a0fc, 0x094100315653d99e}, {0x991568444e180311, 0xd2737438c26ce90a, 0xdbc275ba4f952e3d, 0x0cf2901c8061a86c}},
		{{0x420fe6c269716a0b, 0x08b7dd4708ef709e, 0x329d8a2e6fe200ed, 0x1222e31cd92b62f0}, {0xb652e596980e08ad, 0x2a4cc531884fedc8, 0xc46ca74eec39d49d, 0x0b48e7b1d7a509fd}, {0x4fbaa3701ddeaa0d, 0x46253f48809fe521, 0xd112ddebd5e32030, 0x1097e3ec6e60e118}},
		{{0x07f6c938967b0c46, 0x66ad30d9230cadd4, 0x8e29f7672e4a0be7, 0x04c41db88b35e10a}, {0x2e06c4c8fccce6bb, 0xcbcc115dfebbaec8, 0xb9bfb46a2bb6c2bd, 0x03f7022fec7006a3}, {0x9ba3cd1b5a7ea410, 0x2846943e7e492f26, 0x4b5467dac4c06c22, 0x0fee1050a62457c4}},
		{{0x596d83e6afb9ad36, 0x691980fd98760a84, 0x1c0fb72236b50683, 0x0fb35167160dc2a4}, {0x358fb4ef306096a6, 0xb56d4c3b786a0e9e, 0x62bb94eba70f9139, 0x069e36e501704d5f}, {0x869458f0325ec1bb, 0x30284fcd2d534c3c, 0xcbef149296fc72ca, 0x03552f3324516b98}},
		{{0xb90e6db2001a76e5, 0xb0a48954a7c16964, 0x4c1708dfa8a00722, 0x0c282b1347afa86e}, {0xc546217837e92b33, 0x16e80e8b0b4c9e40, 0xcbaea3f8561857e8, 0x0982959ca9f93cb6}, {0x137b20572180ca19, 0x4bec88c627bc3286, 0x437845a137c09c0f, 0x0dd87b8180b6642a}},
		{{0xef8ae14f80579ec4, 0xff00af70e7f82ca8, 0x349a668ef4a24268, 0x09045a3ec71217dd}, {0x0575c565182420ff, 0x81855a68599238f4, 0x4e193b16c1e2b053, 0x030c8d8f831a71b9}, {0xed1d25ee13da70a5, 0xa803756488855b3e, 0x2d11bea5f5a54c36, 0x064cb52b22e2d297}},
		{{0x1f821ae0a7913832, 0x175e966e73ae8438, 0xe28721be2235efa8, 0x116cc59db8e844a2}, {0xf53466063aa88798, 0x2b79ed8957bb7285, 0x97b8d49913859afe, 0x0947b6de25ca7063}, {0x80b1cec4a438e5ca, 0xf9aa695bca686274, 0x65295130b59fbc7a, 0x003454a81643d399}},
		{{0x23586842f3dcbd7b, 0xadbbed7a47cd64f6, 0x0593a5c48a5ba0b1, 0x0e1760cb4dd92ff9}, {0xe459ec695b72e1cb, 0xd059df313554e8b2, 0xe797a63fe1b23a52, 0x0839931866d47ce4}, {0x6ea750cf756662d9, 0x79d1a39f46657aa8, 0x061746109e6df99d, 0x0f409eea34d3c04b}},
		{{0xe2b164f19764e6cb, 0xe6bbad23d87191ab, 0xc695fe80e0895bfa, 0x03a97f7c1c702554}, {0xec79f5a78833fb19, 0x091c7690074f5edb, 0xa0746c7f5da5ea7f, 0x036afe094bfd4997}, {0x8535b06e643956d0, 0x71e46f2cb9deda7c, 0x2b8551524c6b29c6, 0x115df1e317d6ab8b}},
		{{0x81ddb164cc2b4916, 0xd63ce6f3cbd46b92, 0x69788d568278b866, 0x05b29eb4dc7bfc1e}, {0xf96b859445f2c615, 0xa97ca470c11bdb4a, 0x7ce851d297375458, 0x0a2198edf79ecc3b}, {0x5e33cc209fd478ac, 0x14a3d98d7598304e, 0xb1d9c34490abbcc8, 0x09c86ed5b899a089}},
		{{0x6982c91b12222cc3, 0x94b68f470f5beb94, 0x9f8c30285f5c05dc, 0x0a05981c0a98b710}, {0x2153fb9b52f9a5cc, 0x0ed6e5f7dd4033f2, 0xd07544ce5b5cd24b, 0x03be7474bc150d13}, {0x9a56a64d048f50de, 0x286b69ead08aed25, 0xb41a061755e2d61a, 0x038458139d19b6fc}},
		{{0xb3f42fcd95791a2b, 0x9d79b2900c749c2a, 0x13ea88cdc661cad2, 0x051f6f4a81dac2d6}, {0x1017d43acc69eb34, 0x409a0366fdfb255c, 0x6dbcb7cba12fd028, 0x06ca7b023199e459}, {0xd8f156db12d243b7, 0xb4218274948f02e4, 0x2d93f5aefc12c2a9, 0x05395869efcac3fc}},
		{{0x44abcef2bb378bf6, 0x19d41c39a3ac77b2, 0x91c2afbf2fdcc886, 0x0e458d57f71ffad6}, {0x0c642bde093f2dc2, 0x2156fa7445a2704f, 0xc55a1d0705344d4e, 0x0c6150424cc81af4}, {0xf06d469b327ae6d0, 0x69c61dfacf3e40a2, 0xbae3ec026f6c6672, 0x00ff33bbef179f8f}},
		{{0x862aeb8da2a507c1, 0xeda0be75dda9289e, 0x1729577c9b5a9827, 0x0ea511b4272c347b}, {0xff4ae063f9472246, 0xc4297d2def661cad, 0x385a933723a0e760, 0x0c65a9a8a43949cd}, {0x9d03995b7b1b474e, 0x36d5a5ad0f8d6072, 0x651d898ee87b7135, 0x00b0e118897c3b45}},
		{{0xcae938200e46105a, 0x1f6b2efc7872cc03, 0xfbe6168061e31f80, 0x0f2272719835b3c5}, {0xbe06e0ac481e787a, 0x4e5320ef47f4e988, 0xeb9fc868d7f38492, 0x0c73d223c95e12fd}, {0xec6695b677cf0913, 0x0a7b157ea72ff71b, 0x32fd977ba15f343c, 0x031fd0756e79a9ac}},
		{{0x7426205ccae3b157, 0x856d6be2bc010f64, 0x391fb5e9a31f9f38, 0x0589644dd9371cc0}, {0xc9f7135f2d78a54a, 0xeb5788f04a55ad34, 0x267622b89f984a02, 0x06ab1f5a030e99e1}, {0x500c67b669c4765b, 0x4da6fa1b807a9198, 0x4cca1e31ed54966f, 0x09dc9480c4b47a1f}},
		{{0x5b9aa111f3d61034, 0x3e6b17d174b4b22d, 0xf964603ba7e1bb93, 0x128614f1a579c017}, {0xbe80b8945b441e43, 0x7714c42ee8a722ea, 0x83cb858b82e71e94, 0x11bb67615d302201}, {0x2cfa9008d32c72f9, 0xdb89b27958ae6d83, 0x5acd39c9f2940e49, 0x0d657c9194233125}},
		{{0x7b176b7feba59989, 0x6d8ee1a0b09e5bb3, 0xc134d0e7c43176f0, 0x006db3edfb4c260a}, {0x5f2eb47cdfbff1b9, 0x9d95b48e6d2f6793, 0xd09a9ae4b6aabc84, 0x0d165c0f7e611b25}, {0xed1d02c9e159c1af, 0xcb9e58ab4a9763e7, 0xdde6dddf8faa0e65, 0x0b5b1eaa9ac18b7c}},
		{{0x771e186a3d6ad630, 0x78fac17292a67062, 0x78902142b5104a6b, 0x0fd613359f241b94}, {0xf4f326f9505a0e0f, 0xdccb5076a7459e0f, 0x190973660cdd8c05, 0x00242310fd779c3b}, {0xb874fe8f171a17b4, 0x6df42b9a3709bd13, 0x0d38327ceb98797c, 0x10eef1a001cce1f8}},
		{{0x1c05d7265d7da8a9, 0x58b260fa34434b12, 0xe808027528326c4f, 0x101e692d3e838010}, {0x1a1661b5232dc811, 0x919bd6452d7c1682, 0xa4fb971c6bf20c6f, 0x0c6d4311b009b244}, {0x4d9254fcd7bb93da, 0x4dd6c35e99e37982, 0x9b0963aca9ead932, 0x0681390062fa94ea}},
		{{0x5e059d100f1b3f34, 0x23e9c67978c601f7, 0xccb310d0e7a4018d, 0x0623d4ba2971122f}, {0x116a2078cac7a34b, 0xd94c0edf8476f4b6, 0x132162f3d5aeb5f2, 0x12901bbc2a27c164}, {0x5c271c72349a01b8, 0x262d47c9fe072023, 0x49138c4989636720, 0x0efb0a0e8b74bcbe}},
		{{0xf6b05e568158d1d8, 0xbb8cb0ef8700f134, 0x18d6cedd3931f532, 0x0ea0b608f8c8a715}, {0x114a58e627776dce, 0x0fadfac8e64f4283, 0xb40caeea84db18b4, 0x0f135db0d8e08986}, {0x88345f4a15c0ec0e, 0xecaa89ec71a68724, 0x16a85d9b1f3ce58b, 0x05f144646764db35}},
		{{0xba2b234bb6a8d7ad, 0x47d996f15572ca34, 0x69f77b3a09be26c9, 0x0b1dba6322b682d1}, {0xa3107d5ae4d19ba4, 0x381baa613fa56d49, 0x881af809dd72bcae, 0x04123c3627c60841}, {0x2d6135db280dcbc1, 0x95330c86044ea2f9, 0x864b0b1afc615a88, 0x086117f7ab8b4ca2}},
		{{0x7696662f8aaf709e, 0x4d420c5ea6ce1644, 0x0f31105c111066ad, 0x0f2580713531d85b}, {0x9e379d8ff43bc547, 0x964d11f183103fab, 0x44a53be274dbe1ad, 0x06a267ad2b2033ab}, {0x7a37ea31754d349b, 0xdf63eece1b8badbf, 0xf4f8ab96617e05f3, 0x0cb906610127516b}},
		{{0x318688a65d1a53d3, 0x7feb26c13ec1630b, 0xae82f204469a8e86, 0x0dd6b64a1858126e}, {0x66703c46f98c950e, 0x168e49b4ed701705, 0x26962547178879ea, 0x0de52afe5395b717}, {0x8365113fed764f0c, 0x590e29c31c68e8cc, 0x8a43c53398da1a9d, 0x10ba00dedcc99067}},
		{{0x4e88bfec6902e5d7, 0xbb39701f486adf29, 0xf34de7b5a4cd494c, 0x09336475128a6cda}, {0xe73bea7689bd3eb2, 0x56c62b3060b33d07, 0x18594b3864cb7166, 0x0c047cf731278da0}, {0x8f19b50d5b1926e8, 0x929da129a3366b1e, 0x4234f5d772f8cd58, 0x0da188ed55431b4d}},
		{{0xfff038246a912103, 0x7b8f4bede1c99953, 0x87f1c8f0b548d761, 0x0cc0d16bb8d06f11}, {0xcc5611d257410762, 0xcfb9252a3290bc01, 0x2b555f4bd9767b58, 0x06ebe3ac3f172e88}, {0x2e5d5dfd8d86565f, 0xe503aeda26517138, 0xfe018fe276e0e33d, 0x09f5e383c9a32953}},
		{{0x3edab5f0f8de7ed8, 0xb028ef019a59c73e, 0x2d592d52e2da549a, 0x0c59ef1f23f0b132}, {0x68f8ba6ff8693fa2, 0xa73cfb4799873150, 0xde60a3170e57994d, 0x04b26beea79585be}, {0x21fae7cd88c1ea99, 0xf2ed6694e80a29c6, 0x55f427ee15533d45, 0x04091b4623cce678}},
		{{0x2168e590097d7fdc, 0x3de49bdf74a09d6a, 0x1d807d5083ac4ffb, 0x114a99fa392f1035}, {0x5e763211a68f7bfd, 0x757efb09f06d1fbe, 0xd3ed4aac99b32364, 0x1179f44e98dbfa2d}, {0xeb3c03e28ff48138, 0xa404f1c754096f96, 0x422f9c9b0ffbd49f, 0x002d28553ce8d773}},
		{{0xc229d9ecfe01ac19, 0xf06795be03d6ae9d, 0x4cfad8f1e6ee49f4, 0x00fa1bb36fa18432}, {0xdf59b5601c3cd323, 0xdb4ad0ec6d2e9a63, 0x7afb96d36b7c8dfb, 0x023ffae15409e6c0}, {0xafd9b28917086ac6, 0xed627b6585aef0bf, 0x1f1b4afdf4a133e3, 0x021b7329bc02e25b}},
		{{0x96c3de5813aec901, 0xd191b509038ccb27, 0xc6d4105f483d3884, 0x105773b2d1ff2110}, {0x4b6abfe837876890, 0x2b0c259d7a9c5e18, 0xfabae1eed4089bea, 0x118181aca8f07377}, {0xaa54445143377422, 0x646da8d02b8b2a43, 0xcc3088e3c70d1170, 0x054812e23a7fbdcc}},
		{{0x74f6197a0e79f261, 0xc538d0d224c893fc, 0x353ca81bc5669525, 0x0a317eecbaa836d1}, {0xe128dfac01da21f8, 0x34e658f0aaa917ba, 0x20737042db392ee4, 0x12008b969d02ab26}, {0x228968205643dcf5, 0x16ac507dc2b4810c, 0x37b6529b3c3b881b, 0x05d8cbac60dd80a8}},
		{{0xb17db0a3dc14521d, 0x4377c2c7a159716c, 0x881f3e12c9c4c71e, 0x0a3bbadeeaadceec}, {0x4e6ed3a8acdbf36f, 0x3b35ef84bdbc6fa5, 0xafd736f19bf4ff74, 0x05e6b12e1d90a59d}, {0x45b9cd311568ffce, 0x516cb8d6c7992c27, 0xdd9d0e19c9b3a0ec, 0x08677eeb6551763c}},
		{{0xfac7e21f9fbf6c01, 0xc1e2cff3ef351175, 0xa4b3ab9e619d711f, 0x1262af5fa841fed9}, {0x811bce6f814483fe, 0x0bcadf20ebdfd74d, 0xe4d53e15214f5e7f, 0x0513673d5124c924}, {0x6938ab32caf0e7bc, 0xf0c30598c1145300, 0x1033e8c7338e9131, 0x01e7d4225297a076}},
	},
	mds: [][]fr.Element{
		{{0xd3e1b719627eef9c, 0x944031bef18c05b7, 0x05f93620ee657611, 0x092696314ebee66e}, {0x54aea0c191840710, 0x7c6572388b138cc5, 0xe99b1822dc11ec04, 0x10d3c62b2749cd64}, {0x5370bc9058093ead, 0x931289d50ba24947, 0x9a5ce8875869e795, 0x0d53f93182fa097b}},
		{{0x8f4dc124731197d2, 0x2a36bbcd15582c3e, 0xc96c0705c91d3bb0, 0x0ce47d4a9f5a4deb}, {0x0d204dd5e85dbef9, 0x2e8997d74794711f, 0x05ab70b99149188b, 0x0bdcba2f9a789715}, {0xae376ca177578394, 0xbb07742229d10c42, 0x685c9a4cddde050b, 0x07bc47e84d8e154d}},
		{{0xbca10ed4ff18a096, 0x1f8a77b246da31e1, 0x16c033b302c66787, 0x060a726dd83142a7}, {0x79b1112619f1dbe1, 0xf4daee489fff6d9f, 0x34e6125090a92526, 0x0b85b6021fb7ced6}, {0x20a59b5ebb6c205b, 0x24fd7ff921f78dd2, 0xe5cf0906ceef128f, 0x0a754100a042d8b9}},
	},
}

var poseidonBls377Rate2Weights = defaultTable{
	rate:          2,
	capacity:      1,
	fullRounds:    8,
	partialRounds: 13,
	alpha:         257,
	ark: [][]fr.Element{
		{{0x534ca6f4fb393564, 0x5bb91b65369dcc6b, 0x15d98e748a2cea97, 0x0e1804471246e0cb}, {0xc0f590b3eeb95b04, 0x3070b85bdb17901f, 0x1f962d3beb41f263, 0x0718ad1e021f0113}, {0xaf09e6ee496c632b, 0x052899db4d78fafb, 0x4ba6328ec0c73955, 0x0bf99a5c872b8d9b}},
		{{0xa4e78c184f056cbc, 0x919e4fae93ac8a90, 0xe94b60151275c329, 0x0e09d4c9eeffc0fc}, {0x8fa0495963a48bd8, 0x12b31d9358c5fa1a, 0xbe5577ac0c3341dc, 0x01ba2d3011a53d1f}, {0xffd2ff707811cab4, 0x86c9f6aad5f6a4f2, 0x5b0b9a882f892a33, 0x041431b7b80e77cc}},
		{{0x8a95dd0ed647a924, 0x0db9ebecd62c688f, 0x7a2670ba61808b54, 0x0690c58fe3eedc90}, {0x7555f37d02fa90ad, 0xe2251ea20b637695, 0xcafee521d9293fd0, 0x0531472ac5dfada0}, {0xd7cbcef2fcd4ab04, 0x87415ba45591e441, 0x097d9808711410fb, 0x05315999fae6a2ed}},
		{{0x3077b01ceaf71aec, 0xaafc8707fdd08922, 0xede1f762a29c082e, 0x0292a9fab75fb328}, {0xc48c694b17e79bff, 0x5f29991dc8f89eec, 0x775288138f602ea8, 0x021b5af8ccf43171}, {0x3358b4d02d9584a2, 0x2262d6a8c9b4c20e, 0x949d43d67079b6e8, 0x0471c82a20bda87a}},
		{{0x76b6ba198a4f3ec1, 0x9c62d89ce5938ead, 0x88abb19ec2186ddc, 0x06a90d29a368df45}, {0xcc7f1717b1d6b252, 0x6d9f5141a77d4f1b, 0x7de33e2f6bd3e804, 0x04b05f22c948c386}, {0x4219a8ef895aa29d, 0x021a50c5c58fad59, 0x149938d10f5a47d2, 0x0d158106d046f09c}},
		{{0x6d73698f8c8df1f9, 0xa06144a4dbb41126, 0x8a960288edce2b77, 0x063e1c26f76f697c}, {0xa08921379a379e27, 0xa8effe43cef5f719, 0x9245d34c2265a1b6, 0x1298f113ad985bae}, {0x8fef060510ba6fd9, 0x88778a28eec7a517, 0x04f6079867f3219d, 0x0e9a3e03e4365c95}},
		{{0xd557132a49211ec3, 0x6eea945842adf151, 0x5fb8f4ee0f3d1ce4, 0x0ae5a02bd63a8678}, {0x96e9e928a505e982, 0xf8e2b69a9719a8e9, 0x725ac9d108c6ee76, 0x00c959f2341bd8c9}, {0xf1f21c26963969c2, 0xd36ee84a878d318d, 0xb822a7806315178a, 0x0d97f60bd6d68807}},
		{{0xca5464e6a4efa053, 0xc05e4f9b7b03002f, 0x0cd49575014edba5, 0x06d53448f952bad8}, {0x4b2f6c4f18746d56, 0x80559f009b2439b8, 0x6891a9b25f3fcebc, 0x04d1a7cf733b60d8}, {0xa4da4b8973e84527, 0x824fd885f3cfaee4, 0x3ae5e9695728f6d9, 0x0dfa4b760761951a}},
		{{0x6ca496cd508ac471, 0x0c0076b39051d0ad, 0x815cf50f077c12ec, 0x0bc2f1761e207e5b}, {0x6723bc89b5daf0c7, 0xe25b2e77ae018a52, 0x319c642522a7c4c9, 0x0a01e0b3cec0aec9}, {0x3cd84a524a96900b, 0xae43c01786342e9d, 0xef3e2caa3ce9783d, 0x055f2241449d99f1}},
		{{0xc13e377b54fa9bb2, 0x46d0d745729dac34, 0x05f361a33f0923be, 0x0512b17759ccaf86}, {0x793ad1061392db7e, 0x7166fd7edc8fd554, 0x4cfe57c8edf45486, 0x05b4680b0a705fd2}, {0x335a81bb5840cce6, 0x48743ed0c31e65e9, 0xbe664f4512fb3ef1, 0x04a9723bcc65faad}},
		{{0x02c2dd61e37b49ec, 0xc1e079b30f23ea4b, 0x9edf605d139446fc, 0x0210ce5bea4fff27}, {0xcb4bbf7de5ca1067, 0x0139cdab12349f5b, 0x0da3c942e15bc413, 0x0ed9e78e0f911b07}, {0x2391e1cd5c622cce, 0x41a8840f4f208ed4, 0x60468dc6b22c15c3, 0x043096381c1e0109}},
		{{0xdc65eb00c8e66305, 0x60afc2e8bf07b213, 0x5d2bb4ff6323b05c, 0x0bdaff15071b7acf}, {0xbd013e8e00a6109b, 0x307706f57df3e973, 0x0f1a2fd1d2fa7a2d, 0x09d7073e511e14c9}, {0xd285bba3c8be0627, 0xe0562678ab828c8f, 0x5e6ca83e149f7d40, 0x0f01fc8a2246644f}},
		{{0xd578c76d1e199e46, 0x35dc37f7edce3cea, 0x35648deee5555553, 0x0973d8c24a2a4963}, {0xf062e4b0cdff82bc, 0x1475330e8e24a30a, 0x9c425947726a1c36, 0x037c33641abab775}, {0xdee8aba4638a5eeb, 0x7f4b6e46bcdcac88, 0x8553ef375fc4c4b6, 0x0658882352be3594}},
		{{0x19b7381293816318, 0xa1d9a0e841d0e15d, 0x5f91d3f23af4b247, 0x08c7dcc877f1e715}, {0x8a7f64ece3af5260, 0x198b383f2314b8d1, 0xdb9c5a942b852653, 0x0a364bd99ab4f864}, {0x3b320a2d6bb0ea3f, 0xd788a97f0348eb24, 0x368c5f962f45bd5f, 0x0beeb0abfb339618}},
		{{0x0c84ba48db90dcbd, 0x7538108dda000c9d, 0xcd8111284b36c6b9, 0x0a13f91945c4163c}, {0x405a30930376b9c3, 0xd69a13767520b2e7, 0x4d0c47c2aa0ad871, 0x126fbcf440984e57}, {0x4d30a7e4b1467d07, 0xcb9f9d42c036eee9, 0x57f09bbfbc1e4019, 0x109b98ffc5facaf9}},
		{{0x35342e41306d0c11, 0x44c4f1c2e3c10348, 0x536b7937affdfcb8, 0x014254d964616556}, {0x7e229fa6e171e622, 0x5f025faf6429359e, 0x9b4d543f46acd3da, 0x091c2be151101ecf}, {0xfa6cf910b474ce97, 0x3030d9b112ddba6d, 0x64fbe4f9dd6227a8, 0x0f546ff0c01a3153}},
		{{0xeeaff8127ecf3313, 0x6925eae0a9035393, 0x4598b323441bbaae, 0x10be37eae90ea39e}, {0x2415ef737bac9c4d, 0x66ee7fdf5de9b54a, 0x622410924e64f0ed, 0x0717dca518f3f74f}, {0x1eb0c897acda9791, 0xffd3c1affd058851, 0xaee692ed61208e5a, 0x0ac0f49d353a42ba}},
		{{0xc095035a09c301b2, 0x6a1cbc4544756182, 0xa589c1b68329a242, 0x0b4868722e102c0f}, {0x7772b627a6e6e712, 0x000db615b3fb1750, 0xa4f2efcff1b3111c, 0x0f619d296915ba15}, {0x5354665918ca75e7, 0xd3be1a6c45c79fc1, 0xea92dbd6cd77c77b, 0x0c60aa1df7170a78}},
		{{0x7fef90a2b720d60e, 0x7bfff64d06615fc4, 0x6d07606e819cac34, 0x0c45c068d3e4aaf3}, {0x8d36693bde4731b1, 0xbe5faa81b5124bb6, 0x849f1e980beb270e, 0x0d95ef4eb6d91eb7}, {0x8638bea4aea16daa, 0xe8f03a65657ad1c3, 0xb9fdb27f09988037, 0x11e724a6e7c1a1a3}},
		{{0x61451fdcd21a4808, 0xa06adf38d6875ecc, 0x9cb5a1f7311bc08e, 0x0508dd0d7363cd9c}, {0x12ee628e3383eafd, 0x482a75cbaa1fc0e6, 0x39c06e2e367fb3b2, 0x070fd16c11b0df59}, {0x65510ea0898eda66, 0x3b10a6c8193c2d7e, 0x4c0f47575c3955d9, 0x11ae3cb5de0202bb}},
		{{0xf6ea8c01e19eb967, 0x91d0b3afa5be7cad, 0xa85c6b4da755b290, 0x0f9bda8cb1ccf7bd}, {0x9da570a57cbd94f6, 0xe6de7eb759a1742a, 0x74b7a950b7540cf0, 0x10451c2d1785403b}, {0x2d9168b37cafa77f, 0x2d714aa9c31f8ccd, 0xf0c3a35c8ca5a91b, 0x004df15966dcd45d}},
	},
	mds: [][]fr.Element{
		{{0x7b186659e140eb68, 0x4885c5b87ccf7e69, 0x86c99b5a47e26a0e, 0x098a37fbebb5b13c}, {0xa62963aa67399d4a, 0x5b7eab2d35e412f5, 0x6c5b80e76a824448, 0x11dc5ce4266835d9}, {0xc8337be62916ebbb, 0x356b2c5415176950, 0x135b23803c3f171c, 0x075a2eb564858ab8}},
		{{0x2c8e0043bf98f361, 0xa6d9e19ab2855ed7, 0x30266610d674e7b3, 0x0eddefea0b1d56c1}, {0x9192d4b1510e40a6, 0x700305ee70701429, 0x897008ef5a5a6d02, 0x06b4b395ed357cad}, {0xad08a9be4387e6d6, 0xc4ae81a6173e7f3c, 0x095114674f8ff117, 0x0c6ec0ca34a5a1a7}},
		{{0xabf3d839b27abf9c, 0x9786091dcf39735c, 0x5cf487195a70c4e1, 0x00a3f16ee918da5c}, {0xde1b05f911630979, 0xb2e308c6701b38ae, 0x3231fbaecb7b535a, 0x08633d051aaed977}, {0xa61d8df7edb6d7a9, 0xd34ef4fbb30d8086, 0x843f0cdf86151d9b, 0x025f20e8d5e65d29}},
	},
}
